package routes_test

import (
	"context"
	"net/http"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/yigit/ucsbapi/internal/app/models"
	"github.com/yigit/ucsbapi/internal/app/models/dto"
	"github.com/yigit/ucsbapi/internal/app/repositories"
)

const createArticleQuery = "/api/ucsbarticles/post?title=Gaucho%20Day&url=https://news.ucsb.edu&explanation=Campus%20news&email=cgaucho@ucsb.edu&dateAdded=2022-01-03T00:00:00"

var _ = Describe("UCSBArticles", func() {
	var (
		app      *testApp
		store    *mockStore[models.Article, int64]
		articles []models.Article
	)

	BeforeEach(func() {
		app = newTestApp()
		store = app.articles
		articles = []models.Article{
			{
				ID:          1,
				Title:       "Storke Tower turns 50",
				URL:         "https://news.ucsb.edu/storke",
				Explanation: "Campus landmark anniversary",
				Email:       "phtcon@ucsb.edu",
				DateAdded:   models.NewLocalDateTime(time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC)),
			},
			{
				ID:          2,
				Title:       "Lagoon cleanup",
				URL:         "https://news.ucsb.edu/lagoon",
				Explanation: "Volunteer day",
				Email:       "cgaucho@ucsb.edu",
				DateAdded:   models.NewLocalDateTime(time.Date(2022, 4, 20, 8, 30, 0, 0, time.UTC)),
			},
		}
		store.findAllFn = func(_ context.Context) ([]models.Article, error) {
			return articles, nil
		}
		store.findByIDFn = func(_ context.Context, id int64) (*models.Article, error) {
			for _, a := range articles {
				if a.ID == id {
					found := a
					return &found, nil
				}
			}
			return nil, repositories.ErrNotFound
		}
	})

	Describe("authorization", func() {
		DescribeTable("rejects requests without a token before touching the store",
			func(method, target string) {
				w := app.do(anonymous, method, target, "")

				Expect(w.Code).To(Equal(http.StatusForbidden))
				Expect(errorBody(w).Type).To(Equal(dto.ErrorTypeAccessDenied))
				Expect(store.calls).To(BeZero())
			},
			Entry("list", http.MethodGet, "/api/ucsbarticles/all"),
			Entry("get", http.MethodGet, "/api/ucsbarticles?id=1"),
			Entry("create", http.MethodPost, createArticleQuery),
		)

		It("rejects creates from regular users without writing", func() {
			w := app.do(regularUser, http.MethodPost, createArticleQuery, "")

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(errorBody(w).Type).To(Equal(dto.ErrorTypeAccessDenied))
			Expect(store.mutations()).To(BeZero())
		})
	})

	Describe("GET /all", func() {
		It("returns the store snapshot with local date-times", func() {
			w := app.do(regularUser, http.MethodGet, "/api/ucsbarticles/all", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`[
				{"id":1,"title":"Storke Tower turns 50","url":"https://news.ucsb.edu/storke","explanation":"Campus landmark anniversary","email":"phtcon@ucsb.edu","dateAdded":"2022-01-03T00:00:00"},
				{"id":2,"title":"Lagoon cleanup","url":"https://news.ucsb.edu/lagoon","explanation":"Volunteer day","email":"cgaucho@ucsb.edu","dateAdded":"2022-04-20T08:30:00"}
			]`))
		})

		It("returns an empty array when there are no articles", func() {
			articles = nil

			w := app.do(regularUser, http.MethodGet, "/api/ucsbarticles/all", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`[]`))
		})
	})

	Describe("GET", func() {
		It("gets an article by id", func() {
			w := app.do(regularUser, http.MethodGet, "/api/ucsbarticles?id=2", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(toJSON(articles[1])))
			Expect(w.Body.String()).To(ContainSubstring(`"dateAdded":"2022-04-20T08:30:00"`))
			Expect(store.lookups).To(Equal([]int64{2}))
		})

		It("returns 404 for an unknown id", func() {
			w := app.do(regularUser, http.MethodGet, "/api/ucsbarticles?id=7", "")

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(errorBody(w).Message).To(Equal("UCSBArticles with id 7 not found"))
		})
	})

	Describe("POST /post", func() {
		It("creates an article and echoes dateAdded in the format it was sent", func() {
			store.insertFn = func(_ context.Context, a *models.Article) (*models.Article, error) {
				saved := *a
				saved.ID = 3
				return &saved, nil
			}

			w := app.do(admin, http.MethodPost, createArticleQuery, "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(store.inserted).To(HaveLen(1))
			Expect(store.inserted[0].DateAdded.Equal(time.Date(2022, 1, 3, 0, 0, 0, 0, time.UTC))).To(BeTrue())
			Expect(w.Body.String()).To(MatchJSON(`{
				"id":3,
				"title":"Gaucho Day",
				"url":"https://news.ucsb.edu",
				"explanation":"Campus news",
				"email":"cgaucho@ucsb.edu",
				"dateAdded":"2022-01-03T00:00:00"
			}`))
		})

		It("returns 400 for a malformed dateAdded", func() {
			w := app.do(admin, http.MethodPost,
				"/api/ucsbarticles/post?title=a&url=b&explanation=c&email=d&dateAdded=yesterday", "")

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(errorBody(w).Type).To(Equal(dto.ErrorTypeValidation))
			Expect(store.calls).To(BeZero())
		})
	})

	DescribeTable("answers 405 for update or delete",
		func(method string) {
			w := app.do(admin, method, "/api/ucsbarticles?id=1", "")

			Expect(w.Code).To(Equal(http.StatusMethodNotAllowed))
			Expect(store.calls).To(BeZero())
		},
		Entry("update", http.MethodPut),
		Entry("delete", http.MethodDelete),
	)
})

var _ = Describe("GET /health", func() {
	It("answers without a token", func() {
		app := newTestApp()

		w := app.do(anonymous, http.MethodGet, "/health", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(`{"status":"ok"}`))
	})
})
