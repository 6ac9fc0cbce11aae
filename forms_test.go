package beerfest

import (
	"bytes"
	"context"
	"errors"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/evantbyrne/beerfest/forms"
	"github.com/google/go-cmp/cmp"
)

func testForm() *Form {
	return NewForm("/items/abc",
		forms.Hidden("item").SetValue("4"),
		forms.Text("nickname", "Nickname").SetRequired(true),
		forms.Range("score", "Score").SetRequired(true),
		forms.Password("secret", "Secret"),
		forms.Submit("vote", "Vote"),
	)
}

func postForm(values url.Values) *http.Request {
	r := httptest.NewRequest(http.MethodPost, "/items/abc", strings.NewReader(values.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestFormHTML(t *testing.T) {
	form := NewForm("/items/abc",
		forms.Hidden("item").SetValue("4"),
		forms.Range("score", "Score"),
		forms.Submit("vote", "Vote"),
	)
	expected := `<form method="POST" action="/items/abc">` +
		`<input type="hidden" name="item" value="4" id="item" />` +
		`<div class="field"><label for="score">Score:</label><input type="range" name="score" min="1" max="10" id="score" /></div>` +
		`<input type="submit" name="vote" value="Vote" id="vote" />` +
		`</form>`
	if actual := form.HTML(); actual != expected {
		t.Errorf("Expected\n'%s', got\n'%s'", expected, actual)
	}

	var buffer bytes.Buffer
	if err := form.Component().Render(context.Background(), &buffer); err != nil {
		t.Fatal("Unexpected error:", err)
	}
	if buffer.String() != expected {
		t.Errorf("Expected\n'%s', got\n'%s'", expected, buffer.String())
	}
}

func TestFormHTMLMultipart(t *testing.T) {
	form := NewForm("/upload", forms.File("photo", "Photo"))
	if !strings.Contains(form.HTML(), `enctype="multipart/form-data"`) {
		t.Errorf("Expected multipart enctype, got '%s'", form.HTML())
	}
}

func TestFormValidate(t *testing.T) {
	form := testForm()
	ok := form.Validate(postForm(url.Values{
		"item":     {"4"},
		"nickname": {"sam"},
		"score":    {"8"},
		"secret":   {"hunter2"},
	}))
	if !ok {
		t.Fatalf("Expected valid form, got %v", form.Error)
	}
	if form.Error != nil {
		t.Errorf("Expected no error, got %v", form.Error)
	}
	if form.Element("score").Value() != "8" {
		t.Errorf("Expected '8', got '%s'", form.Element("score").Value())
	}
	if form.Element("secret").Value() != "" {
		t.Errorf("Expected password not to be kept, got '%s'", form.Element("secret").Value())
	}
	if form.Element("vote").ValueHTML() != ` value="Vote"` {
		t.Errorf("Expected submit caption to be kept, got '%s'", form.Element("vote").ValueHTML())
	}
}

func TestFormValidateErrors(t *testing.T) {
	form := testForm()
	ok := form.Validate(postForm(url.Values{
		"item":  {"4"},
		"score": {"11"},
	}))
	if ok {
		t.Fatal("Expected invalid form")
	}

	var formErrors FormErrors
	if !errors.As(form.Error, &formErrors) {
		t.Fatalf("Expected FormErrors, got %T", form.Error)
	}
	actual := make(map[string]string)
	for key, err := range formErrors.Errors {
		actual[key] = err.Error()
	}
	expected := map[string]string{
		"nickname": forms.MessageRequired,
		"score":    forms.MessageOutOfRange,
	}
	if diff := cmp.Diff(expected, actual); diff != "" {
		t.Errorf("errors mismatch (-want +got):\n%s", diff)
	}
	if formErrors.Status() != http.StatusBadRequest {
		t.Errorf("Expected 400, got %d", formErrors.Status())
	}

	html := form.HTML()
	for _, fragment := range []string{
		`<p class="error">This field is required.</p>`,
		`<p class="error">Enter a value between 1 and 10.</p>`,
		`value="11"`,
	} {
		if !strings.Contains(html, fragment) {
			t.Errorf("Expected '%s' in '%s'", fragment, html)
		}
	}
}

func TestFormValidateFile(t *testing.T) {
	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	part, err := writer.CreateFormFile("photo", "label.png")
	if err != nil {
		t.Fatal("Unexpected error:", err)
	}
	part.Write([]byte("png"))
	writer.Close()

	r := httptest.NewRequest(http.MethodPost, "/upload", &body)
	r.Header.Set("Content-Type", writer.FormDataContentType())

	form := NewForm("/upload", forms.File("photo", "Photo").SetRequired(true))
	if !form.Validate(r) {
		t.Errorf("Expected uploaded file to satisfy required, got %v", form.Error)
	}

	missing := NewForm("/upload", forms.File("photo", "Photo").SetRequired(true))
	if missing.Validate(postForm(url.Values{})) {
		t.Error("Expected missing file to fail")
	}
}

func TestFormGlobalError(t *testing.T) {
	form := NewForm("/x", forms.Submit("go", "Go"))
	form.Error = ErrorBadRequest{Message: "Voting is closed."}
	if !strings.Contains(form.HTML(), `<p class="error">Voting is closed.</p>`) {
		t.Errorf("Expected global error in '%s'", form.HTML())
	}

	form.Error = FormErrors{Errors: map[string]error{"_global_": errors.New("Try again.")}}
	if !strings.Contains(form.HTML(), `<p class="error">Try again.</p>`) {
		t.Errorf("Expected global error in '%s'", form.HTML())
	}
}

func TestFormErrorsError(t *testing.T) {
	err := FormErrors{Errors: map[string]error{
		"score": errors.New("b"),
		"item":  errors.New("a"),
	}}
	if err.Error() != "item: a\nscore: b" {
		t.Errorf("Expected 'item: a\\nscore: b', got '%s'", err.Error())
	}
}
