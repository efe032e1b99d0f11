package routes_test

import (
	"context"
	"errors"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/yigit/ucsbapi/internal/app/models"
	"github.com/yigit/ucsbapi/internal/app/models/dto"
	"github.com/yigit/ucsbapi/internal/app/repositories"
)

var _ = Describe("UCSBOrganizations", func() {
	var (
		app   *testApp
		store *mockStore[models.Organization, string]
		zpr   models.Organization
		sky   models.Organization
	)

	BeforeEach(func() {
		app = newTestApp()
		store = app.organizations
		zpr = models.Organization{OrgCode: "ZPR", OrgTranslation: "ZETA PHI RHO", OrgTranslationShort: "ZETA PHI RHO", Inactive: false}
		sky = models.Organization{OrgCode: "SKY", OrgTranslation: "SKYDIVING CLUB", OrgTranslationShort: "SKYDIVING CLUB", Inactive: false}
	})

	withExisting := func(orgs ...models.Organization) {
		store.findByIDFn = func(_ context.Context, id string) (*models.Organization, error) {
			for _, o := range orgs {
				if o.OrgCode == id {
					found := o
					return &found, nil
				}
			}
			return nil, repositories.ErrNotFound
		}
		store.findAllFn = func(_ context.Context) ([]models.Organization, error) {
			return orgs, nil
		}
	}

	Describe("authentication", func() {
		DescribeTable("rejects requests without a token before touching the store",
			func(method, target, body string) {
				w := app.do(anonymous, method, target, body)

				Expect(w.Code).To(Equal(http.StatusForbidden))
				Expect(errorBody(w).Type).To(Equal(dto.ErrorTypeAccessDenied))
				Expect(store.calls).To(BeZero())
			},
			Entry("list", http.MethodGet, "/api/ucsborganizations/all", ""),
			Entry("get", http.MethodGet, "/api/ucsborganizations?orgCode=ZPR", ""),
			Entry("create", http.MethodPost, "/api/ucsborganizations/post?orgCode=ZPR&orgTranslation=a&orgTranslationShort=b&inactive=false", ""),
			Entry("update", http.MethodPut, "/api/ucsborganizations?orgCode=ZPR", `{"orgTranslation":"x"}`),
			Entry("delete", http.MethodDelete, "/api/ucsborganizations?orgCode=ZPR", ""),
		)

		DescribeTable("rejects writes from regular users without mutating the store",
			func(method, target, body string) {
				withExisting(zpr)

				w := app.do(regularUser, method, target, body)

				Expect(w.Code).To(Equal(http.StatusForbidden))
				Expect(errorBody(w).Type).To(Equal(dto.ErrorTypeAccessDenied))
				Expect(store.mutations()).To(BeZero())
			},
			Entry("create", http.MethodPost, "/api/ucsborganizations/post?orgCode=ZPR&orgTranslation=a&orgTranslationShort=b&inactive=false", ""),
			Entry("update", http.MethodPut, "/api/ucsborganizations?orgCode=ZPR", `{"orgTranslation":"x"}`),
			Entry("delete", http.MethodDelete, "/api/ucsborganizations?orgCode=ZPR", ""),
		)
	})

	Describe("GET /all", func() {
		It("returns the store snapshot", func() {
			withExisting(zpr, sky)

			w := app.do(regularUser, http.MethodGet, "/api/ucsborganizations/all", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(toJSON([]models.Organization{zpr, sky})))
		})

		It("returns an empty array for an empty store", func() {
			w := app.do(admin, http.MethodGet, "/api/ucsborganizations/all", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`[]`))
		})

		It("returns 500 without leaking the store failure", func() {
			store.findAllFn = func(_ context.Context) ([]models.Organization, error) {
				return nil, errors.New("connection reset by peer")
			}

			w := app.do(regularUser, http.MethodGet, "/api/ucsborganizations/all", "")

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
			Expect(errorBody(w).Type).To(Equal(dto.ErrorTypeInternal))
			Expect(w.Body.String()).NotTo(ContainSubstring("connection reset"))
		})
	})

	Describe("GET", func() {
		It("returns the organization stored under orgCode", func() {
			withExisting(zpr)

			w := app.do(regularUser, http.MethodGet, "/api/ucsborganizations?orgCode=ZPR", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(toJSON(zpr)))
			Expect(store.lookups).To(Equal([]string{"ZPR"}))
		})

		It("returns identical responses for repeated reads", func() {
			withExisting(zpr)

			first := app.do(regularUser, http.MethodGet, "/api/ucsborganizations?orgCode=ZPR", "")
			second := app.do(regularUser, http.MethodGet, "/api/ucsborganizations?orgCode=ZPR", "")

			Expect(second.Code).To(Equal(first.Code))
			Expect(second.Body.String()).To(Equal(first.Body.String()))
		})

		It("returns 404 for an unknown orgCode", func() {
			w := app.do(regularUser, http.MethodGet, "/api/ucsborganizations?orgCode=krc", "")

			Expect(w.Code).To(Equal(http.StatusNotFound))
			resp := errorBody(w)
			Expect(resp.Type).To(Equal(dto.ErrorTypeEntityNotFound))
			Expect(resp.Message).To(Equal("UCSBOrganizations with id krc not found"))
		})

		It("returns 400 when orgCode is missing", func() {
			w := app.do(regularUser, http.MethodGet, "/api/ucsborganizations", "")

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(errorBody(w).Type).To(Equal(dto.ErrorTypeValidation))
			Expect(store.calls).To(BeZero())
		})
	})

	Describe("POST /post", func() {
		It("inserts the organization built from the query parameters", func() {
			w := app.do(admin, http.MethodPost,
				"/api/ucsborganizations/post?orgCode=ZPR&orgTranslation=ZETA%20PHI%20RHO&orgTranslationShort=ZETA%20PHI%20RHO&inactive=false", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(store.inserted).To(Equal([]models.Organization{zpr}))
			Expect(w.Body.String()).To(MatchJSON(toJSON(zpr)))
		})

		It("accepts inactive=true", func() {
			w := app.do(admin, http.MethodPost,
				"/api/ucsborganizations/post?orgCode=OSLI&orgTranslation=STUDENT%20LIFE&orgTranslationShort=OSLI&inactive=true", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(store.inserted).To(HaveLen(1))
			Expect(store.inserted[0].Inactive).To(BeTrue())
		})

		It("returns 400 when a parameter is missing", func() {
			w := app.do(admin, http.MethodPost, "/api/ucsborganizations/post?orgCode=ZPR&orgTranslation=a&orgTranslationShort=b", "")

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			resp := errorBody(w)
			Expect(resp.Type).To(Equal(dto.ErrorTypeValidation))
			Expect(resp.Message).To(Equal("inactive is required"))
			Expect(store.calls).To(BeZero())
		})

		It("returns 409 for a duplicate orgCode", func() {
			store.insertFn = func(_ context.Context, _ *models.Organization) (*models.Organization, error) {
				return nil, repositories.ErrDuplicateKey
			}

			w := app.do(admin, http.MethodPost,
				"/api/ucsborganizations/post?orgCode=ZPR&orgTranslation=a&orgTranslationShort=b&inactive=false", "")

			Expect(w.Code).To(Equal(http.StatusConflict))
			Expect(errorBody(w).Type).To(Equal(dto.ErrorTypeConflict))
		})
	})

	Describe("PUT", func() {
		It("copies only the mutable fields and keeps the key", func() {
			withExisting(zpr)

			w := app.do(admin, http.MethodPut, "/api/ucsborganizations?orgCode=ZPR",
				`{"orgCode":"HIJACK","orgTranslation":"ZETA PHI RHO FRATERNITY","orgTranslationShort":"ZPR","inactive":true}`)

			expected := models.Organization{
				OrgCode:             "ZPR",
				OrgTranslation:      "ZETA PHI RHO FRATERNITY",
				OrgTranslationShort: "ZPR",
				Inactive:            true,
			}
			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(store.saved).To(Equal([]models.Organization{expected}))
			Expect(w.Body.String()).To(MatchJSON(toJSON(expected)))
		})

		It("returns 404 and never saves for an unknown orgCode", func() {
			w := app.do(admin, http.MethodPut, "/api/ucsborganizations?orgCode=krc", `{"orgTranslation":"x"}`)

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(errorBody(w).Message).To(Equal("UCSBOrganizations with id krc not found"))
			Expect(store.saved).To(BeEmpty())
		})

		It("returns 400 for a malformed body", func() {
			withExisting(zpr)

			w := app.do(admin, http.MethodPut, "/api/ucsborganizations?orgCode=ZPR", `{"orgTranslation":`)

			Expect(w.Code).To(Equal(http.StatusBadRequest))
			Expect(store.calls).To(BeZero())
		})
	})

	Describe("DELETE", func() {
		It("deletes the looked-up organization once", func() {
			withExisting(zpr, sky)

			w := app.do(admin, http.MethodDelete, "/api/ucsborganizations?orgCode=ZPR", "")

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(w.Body.String()).To(MatchJSON(`{"message":"UCSBOrganizations with id ZPR deleted"}`))
			Expect(store.deleted).To(Equal([]models.Organization{zpr}))
		})

		It("returns 404 and never deletes for an unknown orgCode", func() {
			w := app.do(admin, http.MethodDelete, "/api/ucsborganizations?orgCode=krc", "")

			Expect(w.Code).To(Equal(http.StatusNotFound))
			Expect(errorBody(w).Message).To(Equal("UCSBOrganizations with id krc not found"))
			Expect(store.deleted).To(BeEmpty())
		})
	})
})
