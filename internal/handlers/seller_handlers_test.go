package handlers

import (
	"net/http"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func sellerRouter(h *Handlers) *gin.Engine {
	r := gin.New()
	r.POST("/api/sellers", h.CreateSeller)
	r.GET("/api/sellers", h.GetSellers)
	r.PUT("/api/sellers/:id", h.UpdateSeller)
	r.DELETE("/api/sellers/:id", h.DeleteSeller)
	r.PUT("/api/sellers/:id/status", h.UpdateSellerActiveStatus)
	r.PUT("/api/sellers/:id/approve", h.ApproveSeller)
	return r
}

func TestValidPincodes(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"keeps only exact 6-digit entries", []string{"560001", "abc", "12345", ""}, []string{"560001"}},
		{"trims whitespace", []string{" 560001 ", "\t400001"}, []string{"560001", "400001"}},
		{"rejects 7 digits", []string{"5600011"}, []string{}},
		{"rejects mixed alphanumerics", []string{"56000a"}, []string{}},
		{"empty input", nil, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, validPincodes(tt.in))
		})
	}
}

func TestCreateSeller(t *testing.T) {
	t.Run("rejects missing required fields", func(t *testing.T) {
		h, _ := newTestHandlers(t)
		w := serve(sellerRouter(h), jsonRequest(http.MethodPost, "/api/sellers",
			`{"businessName":"Stride Co","ownerName":"Ravi"}`))

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Missing required fields")
	})

	t.Run("creates user, rules and only valid pincodes in one transaction", func(t *testing.T) {
		h, mock := newTestHandlers(t)
		mock.ExpectBegin()
		mock.ExpectExec("INSERT INTO users").
			WithArgs("Ravi", "Stride Co", "Ravi", "ravi@stride.in", "9000000001",
				sqlmock.AnyArg(), nil, nil).
			WillReturnResult(sqlmock.NewResult(21, 1))
		mock.ExpectExec("INSERT INTO user_moq_rules").
			WithArgs(int64(21), 5000.0).
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectExec("INSERT INTO user_delivery_charges").
			WithArgs(int64(21), 99.0).
			WillReturnResult(sqlmock.NewResult(1, 1))
		// Of the four supplied pincodes only "560001" survives validation.
		mock.ExpectExec("INSERT INTO seller_pincodes").
			WithArgs(int64(21), "560001").
			WillReturnResult(sqlmock.NewResult(1, 1))
		mock.ExpectCommit()

		w := serve(sellerRouter(h), jsonRequest(http.MethodPost, "/api/sellers",
			`{"businessName":"Stride Co","ownerName":"Ravi","email":"ravi@stride.in",
			  "phone":"9000000001","password":"pass-word","moq":5000,"deliveryCharge":99,
			  "pincodes":["560001","abc","12345",""]}`))

		require.Equal(t, http.StatusCreated, w.Code)
		require.Contains(t, w.Body.String(), "Seller created (Approval Pending)")
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetSellers(t *testing.T) {
	h, mock := newTestHandlers(t)

	now := time.Now()
	sellerRows := sqlmock.NewRows([]string{"id", "company_name", "owner_name", "email", "phone",
		"status", "approval_status", "created_at", "gst_number", "pan", "moq_amount", "charge_amount"}).
		AddRow(21, "Stride Co", "Ravi", "ravi@stride.in", "9000000001",
			"active", "approved", now, nil, nil, 5000.0, 99.0).
		AddRow(22, "Heel & Sole", "Meera", "meera@hs.in", "9000000002",
			"inactive", "pending", now, nil, nil, 0.0, 0.0)
	mock.ExpectQuery("SELECT (.+) FROM users u LEFT JOIN user_moq_rules").WillReturnRows(sellerRows)

	pinRows := sqlmock.NewRows([]string{"user_id", "pincode"}).
		AddRow(21, "560001").
		AddRow(21, "560002")
	mock.ExpectQuery("SELECT user_id, pincode FROM seller_pincodes").
		WithArgs(int64(21), int64(22)).
		WillReturnRows(pinRows)

	w := serve(sellerRouter(h), jsonRequest(http.MethodGet, "/api/sellers", ""))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"pincodes":["560001","560002"]`)
	// Sellers without pincodes get an empty list, never null.
	require.Contains(t, w.Body.String(), `"pincodes":[]`)
	require.Contains(t, w.Body.String(), `"businessName":"Stride Co"`)
}

func TestUpdateSellerActiveStatus(t *testing.T) {
	t.Run("rejects anything but active or inactive", func(t *testing.T) {
		h, _ := newTestHandlers(t)
		w := serve(sellerRouter(h),
			jsonRequest(http.MethodPut, "/api/sellers/21/status", `{"status":"banned"}`))

		require.Equal(t, http.StatusBadRequest, w.Code)
		require.Contains(t, w.Body.String(), "Invalid status")
	})

	t.Run("updates scoped to seller role", func(t *testing.T) {
		h, mock := newTestHandlers(t)
		mock.ExpectExec(`UPDATE users SET status = \? WHERE id = \? AND role = 'seller'`).
			WithArgs("inactive", "21").
			WillReturnResult(sqlmock.NewResult(0, 1))

		w := serve(sellerRouter(h),
			jsonRequest(http.MethodPut, "/api/sellers/21/status", `{"status":"inactive"}`))

		require.Equal(t, http.StatusOK, w.Code)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateSeller(t *testing.T) {
	// The pincode set is replaced wholesale: delete everything, then
	// re-insert only the validated new list.
	h, mock := newTestHandlers(t)
	mock.ExpectBegin()
	mock.ExpectExec("UPDATE users").
		WithArgs("Stride Co", "Ravi", "9000000001", nil, nil, "21").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE user_moq_rules SET moq_amount").
		WithArgs(7500.0, "21").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE user_delivery_charges SET charge_amount").
		WithArgs(49.0, "21").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM seller_pincodes WHERE user_id").
		WithArgs("21").
		WillReturnResult(sqlmock.NewResult(0, 2))
	mock.ExpectExec("INSERT INTO seller_pincodes").
		WithArgs("21", "110001").
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	w := serve(sellerRouter(h), jsonRequest(http.MethodPut, "/api/sellers/21",
		`{"businessName":"Stride Co","ownerName":"Ravi","phone":"9000000001",
		  "moq":7500,"deliveryCharge":49,"pincodes":["110001","bogus"]}`))

	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteSeller(t *testing.T) {
	// Soft delete: the row survives with status flipped.
	h, mock := newTestHandlers(t)
	mock.ExpectExec(`UPDATE users SET status = 'deleted' WHERE id = \? AND role = 'seller'`).
		WithArgs("21").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := serve(sellerRouter(h), jsonRequest(http.MethodDelete, "/api/sellers/21", ""))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Seller deleted")
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestApproveSeller(t *testing.T) {
	// Approval and activation land together.
	h, mock := newTestHandlers(t)
	mock.ExpectExec(`UPDATE users SET approval_status = 'approved', status = 'active'`).
		WithArgs("21").
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := serve(sellerRouter(h), jsonRequest(http.MethodPut, "/api/sellers/21/approve", ""))

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), "Seller approved")
	require.NoError(t, mock.ExpectationsWereMet())
}
