package routes_test

import (
	"context"
	"net/http"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/yigit/ucsbapi/internal/app/models"
	"github.com/yigit/ucsbapi/internal/app/models/dto"
	"github.com/yigit/ucsbapi/internal/app/repositories"
)

const createMenuItemQuery = "/api/UCSBDiningCommonsMenuItem/post?diningCommonsCode=carrillo&name=Tofu%20Banh%20Mi&station=Entree"

var _ = Describe("UCSBDiningCommonsMenuItem", func() {
	var (
		app   *testApp
		store *mockStore[models.MenuItem, int64]
		items []models.MenuItem
	)

	BeforeEach(func() {
		app = newTestApp()
		store = app.menuItems
		items = []models.MenuItem{
			{ID: 1, DiningCommonsCode: "ortega", Name: "Baked Pesto Pasta with Chicken", Station: "Entree Specials"},
			{ID: 2, DiningCommonsCode: "portola", Name: "Cream of Broccoli Soup (v)", Station: "Greens & Grains"},
		}
		store.findAllFn = func(_ context.Context) ([]models.MenuItem, error) {
			return items, nil
		}
		store.findByIDFn = func(_ context.Context, id int64) (*models.MenuItem, error) {
			for _, item := range items {
				if item.ID == id {
					found := item
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
			Entry("list", http.MethodGet, "/api/UCSBDiningCommonsMenuItem/all"),
			Entry("get", http.MethodGet, "/api/UCSBDiningCommonsMenuItem?id=1"),
			Entry("create", http.MethodPost, createMenuItemQuery),
		)

		It("rejects creates from regular users without writing", func() {
			w := app.do(regularUser, http.MethodPost, createMenuItemQuery, "")

			Expect(w.Code).To(Equal(http.StatusForbidden))
			Expect(errorBody(w).Type).To(Equal(dto.ErrorTypeAccessDenied))
			Expect(store.mutations()).To(BeZero())
		})
	})

	It("lists every menu item", func() {
		w := app.do(regularUser, http.MethodGet, "/api/UCSBDiningCommonsMenuItem/all", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(toJSON(items)))
	})

	It("gets a menu item by id", func() {
		w := app.do(regularUser, http.MethodGet, "/api/UCSBDiningCommonsMenuItem?id=2", "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(w.Body.String()).To(MatchJSON(toJSON(items[1])))
		Expect(store.lookups).To(Equal([]int64{2}))
	})

	It("returns 404 for an unknown id", func() {
		w := app.do(regularUser, http.MethodGet, "/api/UCSBDiningCommonsMenuItem?id=7", "")

		Expect(w.Code).To(Equal(http.StatusNotFound))
		Expect(errorBody(w).Message).To(Equal("UCSBDiningCommonsMenuItem with id 7 not found"))
	})

	It("returns 400 for a non-numeric id without calling the store", func() {
		w := app.do(regularUser, http.MethodGet, "/api/UCSBDiningCommonsMenuItem?id=abc", "")

		Expect(w.Code).To(Equal(http.StatusBadRequest))
		Expect(errorBody(w).Type).To(Equal(dto.ErrorTypeValidation))
		Expect(store.calls).To(BeZero())
	})

	It("creates a menu item and returns the stored record", func() {
		store.insertFn = func(_ context.Context, item *models.MenuItem) (*models.MenuItem, error) {
			saved := *item
			saved.ID = 3
			return &saved, nil
		}

		w := app.do(admin, http.MethodPost, createMenuItemQuery, "")

		Expect(w.Code).To(Equal(http.StatusOK))
		Expect(store.inserted).To(Equal([]models.MenuItem{
			{DiningCommonsCode: "carrillo", Name: "Tofu Banh Mi", Station: "Entree"},
		}))
		Expect(w.Body.String()).To(MatchJSON(`{"id":3,"diningCommonsCode":"carrillo","name":"Tofu Banh Mi","station":"Entree"}`))
	})

	DescribeTable("answers 405 for update or delete",
		func(method, body string) {
			w := app.do(admin, method, "/api/UCSBDiningCommonsMenuItem?id=1", body)

			Expect(w.Code).To(Equal(http.StatusMethodNotAllowed))
			Expect(w.Header().Get("Allow")).To(ContainSubstring(http.MethodGet))
			Expect(errorBody(w).Type).To(Equal(dto.ErrorTypeMethod))
			Expect(store.calls).To(BeZero())
		},
		Entry("update", http.MethodPut, `{"name":"x"}`),
		Entry("delete", http.MethodDelete, ""),
	)
})
