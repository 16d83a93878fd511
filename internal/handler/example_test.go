package handler

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"

	"github.com/MikhailRaia/link-shortener/internal/service"
	"github.com/MikhailRaia/link-shortener/internal/storage/memory"
)

func newExampleRouter() http.Handler {
	linkService := service.NewLinkService(memory.NewStorage())
	return NewHandler(linkService, "public").RegisterRoutes()
}

// Example_shorten creates a link under a custom code.
func Example_shorten() {
	router := newExampleRouter()

	body := strings.NewReader(`{"url":"https://example.com/docs","shortCode":"my docs"}`)
	req := httptest.NewRequest(http.MethodPost, "/shorten", body)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	fmt.Println(rec.Code)
	fmt.Println(rec.Body.String())

	// Output:
	// 200
	// {"success":true,"shortCode":"my_docs"}
}

// Example_redirect follows a stored code.
func Example_redirect() {
	router := newExampleRouter()

	create := httptest.NewRequest(http.MethodPost, "/shorten", strings.NewReader(`{"url":"https://example.com","shortCode":"home"}`))
	router.ServeHTTP(httptest.NewRecorder(), create)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/home", nil))

	fmt.Println(rec.Code)
	fmt.Println(rec.Header().Get("Location"))

	// Output:
	// 302
	// https://example.com
}

// Example_links lists the stored mapping.
func Example_links() {
	router := newExampleRouter()

	for _, payload := range []string{
		`{"url":"https://a.example.com","shortCode":"a"}`,
		`{"url":"https://b.example.com","shortCode":"b"}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/shorten", strings.NewReader(payload))
		router.ServeHTTP(httptest.NewRecorder(), req)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/links", nil))

	fmt.Println(rec.Body.String())

	// Output:
	// {"a":"https://a.example.com","b":"https://b.example.com"}
}
