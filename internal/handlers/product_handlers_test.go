package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func productRouter(h *Handlers, userID int64) *gin.Engine {
	r := gin.New()
	grp := r.Group("/api/products")
	if userID != 0 {
		grp.Use(asUser(userID, "seller"))
	}
	grp.POST("/add", h.AddProduct)
	grp.GET("/my", h.GetMyProducts)
	return r
}

func TestAddProduct(t *testing.T) {
	t.Run("rejects anonymous caller", func(t *testing.T) {
		h, _ := newTestHandlers(t)
		req := multipartRequest(t, http.MethodPost, "/api/products/add",
			map[string]string{"name": "Runner Pro"}, nil)
		w := serve(productRouter(h, 0), req)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("zero files still creates the product", func(t *testing.T) {
		h, mock := newTestHandlers(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO products").
			WithArgs(int64(9), int64(3), "Runner Pro", "runner-pro", "Mesh upper", 1999.0, 1450.0, int64(20)).
			WillReturnResult(sqlmock.NewResult(31, 1))
		mock.ExpectCommit()

		req := multipartRequest(t, http.MethodPost, "/api/products/add",
			map[string]string{
				"name":            "Runner Pro",
				"description":     "Mesh upper",
				"mrp":             "1999",
				"wholesale_price": "1450",
				"category_id":     "3",
				"stock":           "20",
			}, nil)
		w := serve(productRouter(h, 9), req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.Contains(t, w.Body.String(), `"productId":31`)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("first uploaded file becomes the primary image", func(t *testing.T) {
		h, mock := newTestHandlers(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO products").
			WillReturnResult(sqlmock.NewResult(32, 1))
		mock.ExpectExec("INSERT INTO product_images").
			WithArgs(int64(32), sqlmock.AnyArg(), true).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO product_images").
			WithArgs(int64(32), sqlmock.AnyArg(), false).
			WillReturnResult(sqlmock.NewResult(2, 1))
		mock.ExpectCommit()

		req := multipartRequest(t, http.MethodPost, "/api/products/add",
			map[string]string{
				"name":            "Court Classic",
				"mrp":             "2499",
				"wholesale_price": "1800",
				"category_id":     "2",
				"stock":           "12",
			},
			map[string][]string{"images": {"front.jpg", "side.jpg"}})
		w := serve(productRouter(h, 9), req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("junk numeric fields coerce to zero", func(t *testing.T) {
		h, mock := newTestHandlers(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO products").
			WithArgs(int64(9), int64(0), "Budget Flip", "budget-flip", "", 0.0, 0.0, int64(0)).
			WillReturnResult(sqlmock.NewResult(33, 1))
		mock.ExpectCommit()

		req := multipartRequest(t, http.MethodPost, "/api/products/add",
			map[string]string{"name": "Budget Flip", "mrp": "not-a-number"}, nil)
		w := serve(productRouter(h, 9), req)

		require.Equal(t, http.StatusCreated, w.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetMyProducts(t *testing.T) {
	h, mock := newTestHandlers(t)

	now := time.Now()
	productRows := sqlmock.NewRows([]string{"id", "seller_id", "category_id", "name", "slug", "description", "mrp", "wholesale_price", "stock", "created_at"}).
		AddRow(31, 9, 3, "Runner Pro", "runner-pro", "Mesh upper", 1999.0, 1450.0, 20, now).
		AddRow(30, 9, 2, "Court Classic", "court-classic", "", 2499.0, 1800.0, 12, now)
	mock.ExpectQuery("SELECT (.+) FROM products WHERE seller_id").
		WithArgs(int64(9)).
		WillReturnRows(productRows)

	imageRows := sqlmock.NewRows([]string{"product_id", "image_url"}).
		AddRow(31, "a.jpg").
		AddRow(31, "b.jpg")
	mock.ExpectQuery("SELECT product_id, image_url FROM product_images").
		WithArgs(int64(31), int64(30)).
		WillReturnRows(imageRows)

	w := serve(productRouter(h, 9), jsonRequest(http.MethodGet, "/api/products/my", ""))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"images":["a.jpg","b.jpg"]`)
	// The product without image rows keeps an empty list, not null.
	require.Contains(t, w.Body.String(), `"images":[]`)
}
