package routes

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/sohryuu101/web-wedding-sub000/database/testdb"
	"github.com/sohryuu101/web-wedding-sub000/pkg/blobstore"
	"github.com/sohryuu101/web-wedding-sub000/pkg/token"
	"github.com/sohryuu101/web-wedding-sub000/repositories"
	"github.com/sohryuu101/web-wedding-sub000/services"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	db := testdb.Open(t)
	tokens, err := token.NewManager("test-secret", time.Hour)
	if err != nil {
		t.Fatalf("token manager: %v", err)
	}
	store := blobstore.NewMemoryStore("/files")

	return NewApp(Deps{
		Auth:        services.NewAuthServiceWithCost(repositories.NewUserRepository(db), tokens, bcrypt.MinCost),
		Invitations: services.NewInvitationService(repositories.NewInvitationRepository(db)),
		Public:      services.NewPublicService(db),
		Uploads:     services.NewUploadService(store, 1<<20),

		CORSAllowOrigins: "*",
		RSVPRateLimit:    100,
		RequestTimeout:   5 * time.Second,
		UploadMaxBytes:   1 << 20,
	})
}

func do(t *testing.T, app *fiber.App, method, path, bearer string, body any) (*http.Response, map[string]any) {
	t.Helper()
	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal: %v", err)
		}
		r = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, r)
	if body != nil {
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	}
	if bearer != "" {
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+bearer)
	}
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	out := map[string]any{}
	if strings.HasPrefix(resp.Header.Get(fiber.HeaderContentType), fiber.MIMEApplicationJSON) {
		if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
			t.Fatalf("%s %s: decode: %v", method, path, err)
		}
	}
	return resp, out
}

func register(t *testing.T, app *fiber.App, email string) string {
	t.Helper()
	resp, body := do(t, app, http.MethodPost, "/auth/register", "", map[string]string{
		"email":    email,
		"name":     "Ann",
		"password": "correct-horse",
	})
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("register status = %d body=%v", resp.StatusCode, body)
	}
	tok, _ := body["token"].(string)
	if tok == "" {
		t.Fatalf("register returned no token: %v", body)
	}
	return tok
}

func TestInvitationLifecycleOverHTTP(t *testing.T) {
	app := newTestApp(t)
	tok := register(t, app, "ann@example.com")

	resp, body := do(t, app, http.MethodGet, "/invitations", tok, nil)
	if resp.StatusCode != fiber.StatusOK || body["hasInvitation"] != false || body["invitation"] != nil {
		t.Fatalf("empty get: status=%d body=%v", resp.StatusCode, body)
	}

	input := map[string]string{"bride_name": "Ann", "groom_name": "Tom", "wedding_date": "2030-06-01"}
	if resp, _ := do(t, app, http.MethodPost, "/invitations", "", input); resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("create without token: status=%d", resp.StatusCode)
	}

	resp, body = do(t, app, http.MethodPost, "/invitations", tok, input)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create: status=%d body=%v", resp.StatusCode, body)
	}
	inv, _ := body["invitation"].(map[string]any)
	if inv["slug"] != "ann-and-tom" {
		t.Fatalf("slug = %v", inv["slug"])
	}

	if resp, _ := do(t, app, http.MethodPost, "/invitations", tok, input); resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("second create: status=%d, want 400", resp.StatusCode)
	}

	// drafts are invisible to guests
	if resp, _ := do(t, app, http.MethodGet, "/invitation/ann-and-tom", "", nil); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("draft get: status=%d, want 404", resp.StatusCode)
	}

	resp, body = do(t, app, http.MethodPut, "/invitations", tok, map[string]any{"venue": "Rose Hall", "slug": "hijack"})
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("update: status=%d body=%v", resp.StatusCode, body)
	}
	inv, _ = body["invitation"].(map[string]any)
	if inv["venue"] != "Rose Hall" || inv["slug"] != "ann-and-tom" {
		t.Fatalf("update result = %v", inv)
	}

	if resp, _ := do(t, app, http.MethodPut, "/invitations", tok, map[string]any{}); resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("empty update: status=%d, want 400", resp.StatusCode)
	}

	resp, body = do(t, app, http.MethodPost, "/invitations/publish", tok, nil)
	if resp.StatusCode != fiber.StatusOK || body["is_published"] != true {
		t.Fatalf("publish: status=%d body=%v", resp.StatusCode, body)
	}

	if resp, _ := do(t, app, http.MethodGet, "/invitation/ann-and-tom", "", nil); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("published get: status=%d", resp.StatusCode)
	}

	resp, body = do(t, app, http.MethodPost, "/invitation/ann-and-tom/view", "", nil)
	if resp.StatusCode != fiber.StatusOK || body["views"] != float64(1) {
		t.Fatalf("view: status=%d body=%v", resp.StatusCode, body)
	}

	resp, body = do(t, app, http.MethodGet, "/invitations/preview", tok, nil)
	if resp.StatusCode != fiber.StatusOK || body["is_preview"] != true {
		t.Fatalf("preview: status=%d body=%v", resp.StatusCode, body)
	}

	resp, body = do(t, app, http.MethodDelete, "/invitations", tok, nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete: status=%d body=%v", resp.StatusCode, body)
	}
	if resp, _ := do(t, app, http.MethodDelete, "/invitations", tok, nil); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("second delete: status=%d, want 404", resp.StatusCode)
	}
}

func publish(t *testing.T, app *fiber.App, email string) {
	t.Helper()
	tok := register(t, app, email)
	input := map[string]string{"bride_name": "Ann", "groom_name": "Tom", "wedding_date": "2030-06-01"}
	if resp, body := do(t, app, http.MethodPost, "/invitations", tok, input); resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create: status=%d body=%v", resp.StatusCode, body)
	}
	if resp, _ := do(t, app, http.MethodPost, "/invitations/publish", tok, nil); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("publish: status=%d", resp.StatusCode)
	}
}

func TestRSVPOverHTTP(t *testing.T) {
	app := newTestApp(t)
	publish(t, app, "ann@example.com")

	rsvp := map[string]any{"guest_name": "Bob", "guest_email": "Bob@Example.com", "attendance": "yes", "guest_count": 2, "guest_phone": "555-0100", "dietary_requirements": "vegan"}
	resp, body := do(t, app, http.MethodPost, "/invitation/ann-and-tom/rsvp", "", rsvp)
	if resp.StatusCode != fiber.StatusCreated || body["message"] != "Thank you for your response" {
		t.Fatalf("rsvp: status=%d body=%v", resp.StatusCode, body)
	}

	rsvp["guest_email"] = " bob@example.com "
	resp, body = do(t, app, http.MethodPost, "/invitation/ann-and-tom/rsvp", "", rsvp)
	if resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("duplicate rsvp: status=%d body=%v", resp.StatusCode, body)
	}

	bad := map[string]any{"guest_name": "Cy", "attendance": "perhaps"}
	if resp, _ := do(t, app, http.MethodPost, "/invitation/ann-and-tom/rsvp", "", bad); resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("invalid rsvp: status=%d, want 400", resp.StatusCode)
	}

	if resp, _ := do(t, app, http.MethodPost, "/invitation/nobody/rsvp", "", rsvp); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("rsvp to missing invitation: status=%d, want 404", resp.StatusCode)
	}

	resp, body = do(t, app, http.MethodGet, "/invitation/ann-and-tom/rsvps", "", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("list: status=%d", resp.StatusCode)
	}
	list, _ := body["rsvps"].([]any)
	if len(list) != 1 {
		t.Fatalf("rsvps = %v", body["rsvps"])
	}
	entry, _ := list[0].(map[string]any)
	if entry["guest_name"] != "Bob" {
		t.Fatalf("rsvp entry = %v", entry)
	}
	for _, private := range []string{"guest_email", "guest_phone", "dietary_requirements"} {
		if _, ok := entry[private]; ok {
			t.Fatalf("public listing exposes %s: %v", private, entry)
		}
	}
}

func TestGuestPageOverHTTP(t *testing.T) {
	app := newTestApp(t)
	publish(t, app, "ann@example.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/ann-and-tom", nil), -1)
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	page, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("page status=%d body=%s", resp.StatusCode, page)
	}
	if !strings.Contains(string(page), "Ann &amp; Tom") || !strings.Contains(string(page), `action="/ann-and-tom/rsvp"`) {
		t.Fatalf("page misses couple or RSVP form:\n%s", page)
	}

	form := url.Values{"name": {"Dee"}, "attendance": {"attend"}}
	req := httptest.NewRequest(http.MethodPost, "/ann-and-tom/rsvp", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	resp, err = app.Test(req, -1)
	if err != nil {
		t.Fatalf("post form: %v", err)
	}
	if resp.StatusCode != fiber.StatusSeeOther || resp.Header.Get(fiber.HeaderLocation) != "/ann-and-tom?rsvp=thanks" {
		t.Fatalf("form rsvp: status=%d location=%q", resp.StatusCode, resp.Header.Get(fiber.HeaderLocation))
	}

	req = httptest.NewRequest(http.MethodPost, "/ann-and-tom/rsvp", strings.NewReader(form.Encode()))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
	if resp, err = app.Test(req, -1); err != nil {
		t.Fatalf("repeat form: %v", err)
	}
	if resp.Header.Get(fiber.HeaderLocation) != "/ann-and-tom?rsvp=duplicate" {
		t.Fatalf("repeat form rsvp location=%q", resp.Header.Get(fiber.HeaderLocation))
	}

	if resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/someone-else", nil), -1); err != nil {
		t.Fatalf("missing page: %v", err)
	}
	if resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("missing page status=%d, want 404", resp.StatusCode)
	}
}

func TestThemesAndStatic(t *testing.T) {
	app := newTestApp(t)

	resp, body := do(t, app, http.MethodGet, "/themes", "", nil)
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("themes status=%d", resp.StatusCode)
	}
	if list, _ := body["themes"].([]any); len(list) == 0 {
		t.Fatalf("themes = %v", body)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/static/img/placeholder-cover.svg", nil), -1)
	if err != nil {
		t.Fatalf("static asset: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("static asset status=%d", resp.StatusCode)
	}
}

func TestUploadOverHTTP(t *testing.T) {
	app := newTestApp(t)
	tok := register(t, app, "ann@example.com")

	var buf bytes.Buffer
	mw := newMultipart(&buf)
	mw.file(t, "file", "cover.png", "image/png", []byte("\x89PNG fake"))
	mw.field(t, "folder", "covers")
	mw.close(t)

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set(fiber.HeaderContentType, mw.contentType())
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
	resp, err := app.Test(req, -1)
	if err != nil {
		t.Fatalf("upload: %v", err)
	}
	var res services.UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil || resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("upload status=%d err=%v", resp.StatusCode, err)
	}
	if !strings.HasPrefix(res.URL, "/files/users/") {
		t.Fatalf("url = %q", res.URL)
	}

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, res.URL, nil), -1)
	if err != nil {
		t.Fatalf("fetch upload: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK || resp.Header.Get(fiber.HeaderContentType) != "image/png" {
		t.Fatalf("fetch upload: status=%d type=%q", resp.StatusCode, resp.Header.Get(fiber.HeaderContentType))
	}

	if resp, _ := do(t, app, http.MethodDelete, "/upload", tok, map[string]string{"path": res.Path}); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("delete upload: status=%d", resp.StatusCode)
	}
	if resp, _ := do(t, app, http.MethodGet, res.URL, "", nil); resp.StatusCode != fiber.StatusNotFound {
		t.Fatalf("deleted upload still served: status=%d", resp.StatusCode)
	}
}

func TestReservedCustomSlugStaysReachable(t *testing.T) {
	app := newTestApp(t)
	tok := register(t, app, "ann@example.com")

	input := map[string]string{"bride_name": "Ann", "groom_name": "Tom", "wedding_date": "2030-06-01", "custom_slug": "themes"}
	resp, body := do(t, app, http.MethodPost, "/invitations", tok, input)
	if resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("create: status=%d body=%v", resp.StatusCode, body)
	}
	inv, _ := body["invitation"].(map[string]any)
	if inv["slug"] != "themes-1" {
		t.Fatalf("slug = %v, want themes-1", inv["slug"])
	}
	if resp, _ := do(t, app, http.MethodPost, "/invitations/publish", tok, nil); resp.StatusCode != fiber.StatusOK {
		t.Fatalf("publish: status=%d", resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/themes-1", nil), -1)
	if err != nil {
		t.Fatalf("get page: %v", err)
	}
	page, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != fiber.StatusOK || !strings.Contains(string(page), "Ann &amp; Tom") {
		t.Fatalf("page status=%d body=%s", resp.StatusCode, page)
	}

	resp, body = do(t, app, http.MethodGet, "/themes", "", nil)
	if list, _ := body["themes"].([]any); resp.StatusCode != fiber.StatusOK || len(list) == 0 {
		t.Fatalf("themes catalogue shadowed: status=%d body=%v", resp.StatusCode, body)
	}
}

func TestHeadRequestDoesNotCountView(t *testing.T) {
	app := newTestApp(t)
	publish(t, app, "ann@example.com")

	resp, err := app.Test(httptest.NewRequest(http.MethodHead, "/ann-and-tom", nil), -1)
	if err != nil {
		t.Fatalf("head page: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("head status=%d", resp.StatusCode)
	}

	resp, body := do(t, app, http.MethodPost, "/invitation/ann-and-tom/view", "", nil)
	if resp.StatusCode != fiber.StatusOK || body["views"] != float64(1) {
		t.Fatalf("view after HEAD: status=%d body=%v, want views 1", resp.StatusCode, body)
	}
}

func TestUploadedFilesAreNotSniffed(t *testing.T) {
	app := newTestApp(t)
	tok := register(t, app, "ann@example.com")

	upload := func(name, contentType string, data []byte) *http.Response {
		var buf bytes.Buffer
		mw := newMultipart(&buf)
		mw.file(t, "file", name, contentType, data)
		mw.close(t)
		req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
		req.Header.Set(fiber.HeaderContentType, mw.contentType())
		req.Header.Set(fiber.HeaderAuthorization, "Bearer "+tok)
		resp, err := app.Test(req, -1)
		if err != nil {
			t.Fatalf("upload %s: %v", name, err)
		}
		return resp
	}

	svg := []byte(`<svg xmlns="http://www.w3.org/2000/svg"><script>alert(1)</script></svg>`)
	if resp := upload("x.svg", "image/svg+xml", svg); resp.StatusCode != fiber.StatusBadRequest {
		t.Fatalf("svg upload: status=%d, want 400", resp.StatusCode)
	}

	resp := upload("a.png", "image/png", []byte("\x89PNG fake"))
	var res services.UploadResult
	if err := json.NewDecoder(resp.Body).Decode(&res); err != nil || resp.StatusCode != fiber.StatusCreated {
		t.Fatalf("png upload: status=%d err=%v", resp.StatusCode, err)
	}
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, res.URL, nil), -1)
	if err != nil {
		t.Fatalf("fetch: %v", err)
	}
	if got := resp.Header.Get(fiber.HeaderXContentTypeOptions); got != "nosniff" {
		t.Fatalf("X-Content-Type-Options = %q, want nosniff", got)
	}
}
