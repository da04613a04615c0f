package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/baharkarakas/minivenmo/internal/api/httpx"
	"github.com/baharkarakas/minivenmo/internal/api/validate"
	"github.com/baharkarakas/minivenmo/internal/models"
	"github.com/baharkarakas/minivenmo/internal/services"
)

type UsersHandler struct {
	UserSvc            *services.UserService
	WalletSvc          *services.WalletService
	PaymentSvc         *services.PaymentService
	FriendSvc          *services.FriendService
	FeedSvc            *services.FeedService
	DefaultCreditLimit decimal.Decimal
}

type userResp struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	WalletID    string           `json:"wallet_id,omitempty"`
	Balance     *decimal.Decimal `json:"balance,omitempty"`
	Credit      *decimal.Decimal `json:"credit,omitempty"`
	CreditLimit *decimal.Decimal `json:"credit_limit,omitempty"`
}

func toUserResp(u models.User) userResp {
	out := userResp{ID: u.ID, Name: u.Name}
	if w := u.Wallet; w != nil {
		out.WalletID = w.ID
		out.Balance, out.Credit, out.CreditLimit = &w.Balance, &w.Credit, &w.CreditLimit
	}
	return out
}

func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		httpx.WriteError(w, http.StatusBadRequest, "bad_request", "invalid JSON body", nil)
		return false
	}
	return true
}

type createUserReq struct {
	Name           string      `json:"name"`
	InitialBalance json.Number `json:"initial_balance"`
	CreditLimit    json.Number `json:"credit_limit"`
}

// Create handles POST /users.
func (h *UsersHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createUserReq
	if !decode(w, r, &req) {
		return
	}

	var errs validate.Errs
	balance, ef := validate.Decimal("initial_balance", req.InitialBalance, decimal.Zero)
	errs.Add(validate.Required("name", req.Name), ef)
	limit, ef := validate.Decimal("credit_limit", req.CreditLimit, h.DefaultCreditLimit)
	errs.Add(ef, validate.NonNegative("initial_balance", balance), validate.NonNegative("credit_limit", limit))
	if err := errs.Err(); err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}

	u, err := h.UserSvc.Create(r.Context(), req.Name, balance, limit)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, toUserResp(u))
}

// List handles GET /users.
func (h *UsersHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.UserSvc.List(r.Context())
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	out := make([]userResp, 0, len(users))
	for _, u := range users {
		out = append(out, toUserResp(u))
	}
	httpx.WriteJSON(w, http.StatusOK, out)
}

// Get handles GET /users/{id}.
func (h *UsersHandler) Get(w http.ResponseWriter, r *http.Request) {
	u, err := h.UserSvc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, toUserResp(u))
}

// Wallet handles GET /users/{id}/wallet.
func (h *UsersHandler) Wallet(w http.ResponseWriter, r *http.Request) {
	wl, err := h.WalletSvc.Current(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, wl)
}

type payReq struct {
	TargetID    string      `json:"target_id"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description"`
}

// Pay handles POST /users/{id}/pay.
func (h *UsersHandler) Pay(w http.ResponseWriter, r *http.Request) {
	var req payReq
	if !decode(w, r, &req) {
		return
	}

	var errs validate.Errs
	errs.Add(
		validate.Required("target_id", req.TargetID),
		validate.Required("amount", req.Amount.String()),
		validate.MaxLen("description", req.Description, validate.MaxDescription),
	)
	amount, ef := validate.Decimal("amount", req.Amount, decimal.Zero)
	if req.Amount != "" {
		errs.Add(ef)
	}
	if err := errs.Err(); err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}

	act, err := h.PaymentSvc.Pay(r.Context(), chi.URLParam(r, "id"), req.TargetID, amount, req.Description)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{
		"message":     "Payment successful",
		"activity_id": act.ID,
	})
}

type addFriendReq struct {
	FriendID string `json:"friend_id"`
}

// AddFriend handles POST /users/{id}/friends. Both outcomes are 200; created tells them apart.
func (h *UsersHandler) AddFriend(w http.ResponseWriter, r *http.Request) {
	var req addFriendReq
	if !decode(w, r, &req) {
		return
	}
	if ef := validate.Required("friend_id", req.FriendID); ef != nil {
		httpx.WriteServiceError(w, r, validate.Errs{*ef})
		return
	}

	created, err := h.FriendSvc.AddFriend(r.Context(), chi.URLParam(r, "id"), req.FriendID)
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	msg := "Friend added successfully"
	if !created {
		msg = "Already friends or invalid operation"
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"message": msg, "created": created})
}

// Friends handles GET /users/{id}/friends.
func (h *UsersHandler) Friends(w http.ResponseWriter, r *http.Request) {
	friends, err := h.FriendSvc.Friends(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	out := make([]userResp, 0, len(friends))
	for _, u := range friends {
		out = append(out, userResp{ID: u.ID, Name: u.Name})
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"friends": out})
}

// Activity handles GET /users/{id}/activity.
func (h *UsersHandler) Activity(w http.ResponseWriter, r *http.Request) {
	lines, err := h.FeedSvc.Activity(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.WriteServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, map[string]any{"activity": lines})
}
