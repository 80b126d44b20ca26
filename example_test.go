package vitae_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/aretw0/vitae"
)

// Example_basic demonstrates fetching a resume with a one-shot call.
func Example_basic() {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /api/resume/abc", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id": "abc",
			"title": "My Resume",
			"slug": "my-resume",
			"visibility": "private",
			"data": {"basics": {}, "sections": {}},
			"createdAt": "2024-01-01T00:00:00.000Z",
			"updatedAt": "2024-01-02T00:00:00.000Z"
		}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	params := fmt.Sprintf(`{
		"resume_id": "abc",
		"auth": {"email": "me@example.com", "password": "secret", "base_url": %q}
	}`, srv.URL+"/api")

	fmt.Println(vitae.GetResume(context.Background(), params))
	// Output:
	// {
	//   "id": "abc",
	//   "title": "My Resume",
	//   "slug": "my-resume",
	//   "visibility": "private",
	//   "data": {
	//     "basics": {},
	//     "sections": {}
	//   },
	//   "created_at": "2024-01-01T00:00:00.000Z",
	//   "updated_at": "2024-01-02T00:00:00.000Z"
	// }
}

// Example_sectionAdd demonstrates adding an item to a resume section.
func Example_sectionAdd() {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/auth/login", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	mux.HandleFunc("GET /api/resume/abc", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id": "abc",
			"title": "My Resume",
			"slug": "my-resume",
			"visibility": "private",
			"data": {"basics": {}, "sections": {}}
		}`)
	})
	mux.HandleFunc("PATCH /api/resume/abc", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{
			"id": "abc",
			"title": "My Resume",
			"slug": "my-resume",
			"visibility": "private",
			"data": {"basics": {}, "sections": {}},
			"updatedAt": "2024-03-01T00:00:00.000Z"
		}`)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	ts := vitae.New()
	params := fmt.Sprintf(`{
		"resume_id": "abc",
		"section": "skills",
		"operation": "add",
		"data": {"items": [{"name": "Go", "level": 4}]},
		"auth": {"email": "me@example.com", "password": "secret", "base_url": %q}
	}`, srv.URL+"/api")

	fmt.Println(ts.UpdateResumeSection(context.Background(), params))
	// Output:
	// {
	//   "message": "Resume section 'skills' updated successfully",
	//   "resume_id": "abc",
	//   "section": "skills",
	//   "operation": "add",
	//   "timestamp": "2024-03-01T00:00:00.000Z"
	// }
}
