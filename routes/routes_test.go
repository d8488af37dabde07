package routes

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/PunitTak2005/restaurant-qr-menu/configs"
	"github.com/PunitTak2005/restaurant-qr-menu/entity"
)

var dbSeq atomic.Int64

func setupServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:routes_test_%d?mode=memory&cache=shared", dbSeq.Add(1))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := configs.SetupDatabase(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	cfg := &configs.Config{
		Env:       "development",
		JWTSecret: "test-secret",
		JWTTTL:    time.Hour,
	}

	r := gin.New()
	RegisterRoutes(r, db, cfg, nil)
	return r, db
}

type envelope struct {
	Success bool           `json:"success"`
	Error   string         `json:"error"`
	Data    map[string]any `json:"data"`
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if err := json.Unmarshal(w.Body.Bytes(), &env); err != nil {
		t.Fatalf("decode response %q: %v", w.Body.String(), err)
	}
	return w.Code, env
}

func registerUser(t *testing.T, r *gin.Engine, name, email, role string) string {
	t.Helper()
	code, env := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": name, "email": email, "password": "secret123", "role": role,
	})
	if code != http.StatusCreated {
		t.Fatalf("register %s: status %d (%s)", email, code, env.Error)
	}
	token, _ := env.Data["token"].(string)
	if token == "" {
		t.Fatalf("register %s: no token in response", email)
	}
	return token
}

func seedMenu(t *testing.T, db *gorm.DB) (entity.Table, entity.MenuItem) {
	t.Helper()
	rest := entity.Restaurant{Name: "Cafe Delight", Slug: "cafe-delight"}
	if err := db.Create(&rest).Error; err != nil {
		t.Fatalf("seed restaurant: %v", err)
	}
	cat := entity.MenuCategory{Name: "Coffee", Active: true, RestaurantID: &rest.ID}
	if err := db.Create(&cat).Error; err != nil {
		t.Fatalf("seed category: %v", err)
	}
	item := entity.MenuItem{Name: "Espresso", Price: 100, Active: true, CategoryID: cat.ID}
	if err := db.Create(&item).Error; err != nil {
		t.Fatalf("seed item: %v", err)
	}
	table := entity.Table{Number: 1, QRSlug: "table-1", Seats: 4, Status: entity.TableAvailable, Active: true}
	if err := db.Create(&table).Error; err != nil {
		t.Fatalf("seed table: %v", err)
	}
	return table, item
}

func TestHealth(t *testing.T) {
	r, _ := setupServer(t)
	code, env := do(t, r, http.MethodGet, "/", "", nil)
	if code != http.StatusOK || !env.Success {
		t.Fatalf("health: %d %+v", code, env)
	}
}

func TestUnknownRoute404(t *testing.T) {
	r, _ := setupServer(t)
	code, env := do(t, r, http.MethodGet, "/api/nope", "", nil)
	if code != http.StatusNotFound || env.Success {
		t.Fatalf("got %d %+v", code, env)
	}
}

func TestAuthFlow(t *testing.T) {
	r, _ := setupServer(t)

	token := registerUser(t, r, "Alice", "alice@example.com", "")

	// duplicate email
	code, env := do(t, r, http.MethodPost, "/api/auth/register", "", gin.H{
		"name": "Alice 2", "email": "alice@example.com", "password": "secret123",
	})
	if code != http.StatusConflict {
		t.Errorf("duplicate register: status %d (%s)", code, env.Error)
	}

	// login (signup alias covered via register above)
	code, env = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "secret123",
	})
	if code != http.StatusOK || env.Data["token"] == "" {
		t.Fatalf("login: %d %+v", code, env)
	}

	code, _ = do(t, r, http.MethodPost, "/api/auth/login", "", gin.H{
		"email": "alice@example.com", "password": "wrongpass",
	})
	if code != http.StatusUnauthorized {
		t.Errorf("bad password login: status %d", code)
	}

	// me
	code, env = do(t, r, http.MethodGet, "/api/auth/me", token, nil)
	if code != http.StatusOK {
		t.Fatalf("me: %d %+v", code, env)
	}
	user, _ := env.Data["user"].(map[string]any)
	if user["email"] != "alice@example.com" || user["role"] != "customer" {
		t.Errorf("me user = %+v", user)
	}

	code, _ = do(t, r, http.MethodGet, "/api/auth/me", "", nil)
	if code != http.StatusUnauthorized {
		t.Errorf("me without token: status %d", code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r, _ := setupServer(t)

	for _, route := range []struct{ method, path string }{
		{http.MethodGet, "/api/orders"},
		{http.MethodPost, "/api/orders"},
		{http.MethodGet, "/api/orders/my"},
		{http.MethodGet, "/api/tables"},
		{http.MethodGet, "/api/admin/analytics"},
		{http.MethodGet, "/api/poll/orders"},
	} {
		code, env := do(t, r, route.method, route.path, "", nil)
		if code != http.StatusUnauthorized {
			t.Errorf("%s %s without token: status %d", route.method, route.path, code)
		}
		if env.Success || env.Data != nil {
			t.Errorf("%s %s leaked data: %+v", route.method, route.path, env)
		}
	}
}

func TestRoleGates(t *testing.T) {
	r, _ := setupServer(t)
	customer := registerUser(t, r, "Cust", "cust@example.com", "customer")
	staff := registerUser(t, r, "Staff", "staff@example.com", "staff")

	// customer outside the staff set
	if code, _ := do(t, r, http.MethodGet, "/api/orders", customer, nil); code != http.StatusForbidden {
		t.Errorf("customer list orders: status %d", code)
	}
	// staff outside the admin set
	if code, _ := do(t, r, http.MethodGet, "/api/admin/analytics", staff, nil); code != http.StatusForbidden {
		t.Errorf("staff analytics: status %d", code)
	}
	// staff inside the staff set
	if code, _ := do(t, r, http.MethodGet, "/api/orders", staff, nil); code != http.StatusOK {
		t.Errorf("staff list orders: status %d", code)
	}
}

func TestOrderLifecycle(t *testing.T) {
	r, db := setupServer(t)
	table, item := seedMenu(t, db)

	customer := registerUser(t, r, "Cust", "cust@example.com", "customer")
	staff := registerUser(t, r, "Staff", "staff@example.com", "staff")
	admin := registerUser(t, r, "Admin", "admin@example.com", "admin")

	// create: 2 x 100 => 200, pending
	code, env := do(t, r, http.MethodPost, "/api/orders", customer, gin.H{
		"tableId":     table.ID,
		"tableNumber": table.Number,
		"items":       []gin.H{{"menuItemId": item.ID, "qty": 2, "note": "no sugar"}},
	})
	if code != http.StatusCreated {
		t.Fatalf("create order: %d %+v", code, env)
	}
	order, _ := env.Data["order"].(map[string]any)
	if order["totalPrice"] != float64(200) || order["status"] != "pending" {
		t.Fatalf("order = %+v", order)
	}
	orderID := uint(order["ID"].(float64))

	// round-trip by id
	code, env = do(t, r, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), customer, nil)
	if code != http.StatusOK {
		t.Fatalf("get order: %d %+v", code, env)
	}
	got, _ := env.Data["order"].(map[string]any)
	if got["totalPrice"] != float64(200) || got["status"] != "pending" {
		t.Errorf("round-trip order = %+v", got)
	}
	items, _ := got["items"].([]any)
	if len(items) != 1 {
		t.Fatalf("round-trip items = %d, want 1", len(items))
	}
	line, _ := items[0].(map[string]any)
	if line["qty"] != float64(2) || line["note"] != "no sugar" {
		t.Errorf("line = %+v", line)
	}
	if line["menuItem"] == nil || got["user"] == nil || got["table"] == nil {
		t.Error("expected populated references in response")
	}

	// wrong table number cross-check
	code, _ = do(t, r, http.MethodPost, "/api/orders", customer, gin.H{
		"tableId":     table.ID,
		"tableNumber": 99,
		"items":       []gin.H{{"menuItemId": item.ID, "qty": 1}},
	})
	if code != http.StatusBadRequest {
		t.Errorf("mismatched table number: status %d", code)
	}

	// status update by staff, then verify
	code, env = do(t, r, http.MethodPatch, fmt.Sprintf("/api/orders/%d/status", orderID), staff, gin.H{"status": "served"})
	if code != http.StatusOK {
		t.Fatalf("patch status: %d %+v", code, env)
	}
	code, env = do(t, r, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), staff, nil)
	if code != http.StatusOK {
		t.Fatalf("get after patch: %d", code)
	}
	got, _ = env.Data["order"].(map[string]any)
	if got["status"] != "served" {
		t.Errorf("status after patch = %v", got["status"])
	}

	// the duplicate PUT variant behaves the same
	code, _ = do(t, r, http.MethodPut, fmt.Sprintf("/api/orders/%d/status", orderID), staff, gin.H{"status": "paid"})
	if code != http.StatusOK {
		t.Errorf("put status: %d", code)
	}

	// invalid status leaves the row alone
	code, _ = do(t, r, http.MethodPatch, fmt.Sprintf("/api/orders/%d/status", orderID), staff, gin.H{"status": "eaten"})
	if code != http.StatusBadRequest {
		t.Errorf("invalid status: %d", code)
	}
	_, env = do(t, r, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), staff, nil)
	got, _ = env.Data["order"].(map[string]any)
	if got["status"] != "paid" {
		t.Errorf("status after rejected update = %v", got["status"])
	}

	// another customer cannot read it
	other := registerUser(t, r, "Other", "other@example.com", "customer")
	code, _ = do(t, r, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), other, nil)
	if code != http.StatusNotFound {
		t.Errorf("foreign order read: status %d", code)
	}

	// my orders
	code, env = do(t, r, http.MethodGet, "/api/orders/my", customer, nil)
	if code != http.StatusOK || env.Data["count"] != float64(1) {
		t.Errorf("my orders: %d %+v", code, env.Data["count"])
	}

	// delete is admin-only
	code, _ = do(t, r, http.MethodDelete, fmt.Sprintf("/api/orders/%d", orderID), staff, nil)
	if code != http.StatusForbidden {
		t.Errorf("staff delete: status %d", code)
	}
	code, _ = do(t, r, http.MethodDelete, fmt.Sprintf("/api/orders/%d", orderID), admin, nil)
	if code != http.StatusOK {
		t.Errorf("admin delete: status %d", code)
	}
	code, _ = do(t, r, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), staff, nil)
	if code != http.StatusNotFound {
		t.Errorf("get deleted order: status %d", code)
	}
}

func TestPublicMenu(t *testing.T) {
	r, db := setupServer(t)
	seedMenu(t, db)

	code, env := do(t, r, http.MethodGet, "/api/menu/cafe-delight", "", nil)
	if code != http.StatusOK || !env.Success {
		t.Fatalf("public menu: %d %+v", code, env)
	}
	rest, _ := env.Data["restaurant"].(map[string]any)
	if rest["slug"] != "cafe-delight" {
		t.Errorf("restaurant = %+v", rest)
	}
	menu, _ := env.Data["menu"].([]any)
	if len(menu) != 1 {
		t.Fatalf("menu categories = %d, want 1", len(menu))
	}
	cat, _ := menu[0].(map[string]any)
	catItems, _ := cat["items"].([]any)
	if len(catItems) != 1 {
		t.Errorf("category items = %d, want 1", len(catItems))
	}

	code, env = do(t, r, http.MethodGet, "/api/menu/no-such-place", "", nil)
	if code != http.StatusNotFound || env.Success {
		t.Errorf("unknown slug: %d %+v", code, env)
	}
}

func TestPublicMenuHidesInactive(t *testing.T) {
	r, db := setupServer(t)
	_, item := seedMenu(t, db)

	if err := db.Model(&entity.MenuItem{}).Where("id = ?", item.ID).
		Update("active", false).Error; err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	_, env := do(t, r, http.MethodGet, "/api/menu/cafe-delight", "", nil)
	menu, _ := env.Data["menu"].([]any)
	if len(menu) != 1 {
		t.Fatalf("menu categories = %d, want 1", len(menu))
	}
	cat, _ := menu[0].(map[string]any)
	if catItems, _ := cat["items"].([]any); len(catItems) != 0 {
		t.Errorf("inactive item still served: %+v", catItems)
	}
}

func TestTables(t *testing.T) {
	r, db := setupServer(t)
	seedMenu(t, db)

	admin := registerUser(t, r, "Admin", "admin@example.com", "admin")
	staff := registerUser(t, r, "Staff", "staff@example.com", "staff")

	// public QR landing
	code, env := do(t, r, http.MethodGet, "/api/tables/table-1", "", nil)
	if code != http.StatusOK || env.Data["tableNumber"] != float64(1) {
		t.Fatalf("table by slug: %d %+v", code, env)
	}
	code, env = do(t, r, http.MethodGet, "/api/tables/no-such-slug", "", nil)
	if code != http.StatusNotFound || env.Success {
		t.Errorf("unknown slug: %d %+v", code, env)
	}

	// admin create without slug gets a generated one
	code, env = do(t, r, http.MethodPost, "/api/tables", admin, gin.H{"number": 2, "seats": 6})
	if code != http.StatusCreated {
		t.Fatalf("create table: %d %+v", code, env)
	}
	created, _ := env.Data["table"].(map[string]any)
	if created["qrSlug"] == "" || created["status"] != "available" {
		t.Errorf("created table = %+v", created)
	}

	// duplicate number conflicts
	code, _ = do(t, r, http.MethodPost, "/api/tables", admin, gin.H{"number": 2})
	if code != http.StatusConflict {
		t.Errorf("duplicate table number: status %d", code)
	}

	// staff may list, not create
	code, env = do(t, r, http.MethodGet, "/api/tables", staff, nil)
	if code != http.StatusOK {
		t.Fatalf("list tables: %d", code)
	}
	if tables, _ := env.Data["tables"].([]any); len(tables) != 2 {
		t.Errorf("tables = %d, want 2", len(tables))
	}
	code, _ = do(t, r, http.MethodPost, "/api/tables", staff, gin.H{"number": 3})
	if code != http.StatusForbidden {
		t.Errorf("staff create table: status %d", code)
	}

	// admin status update
	id := uint(created["ID"].(float64))
	code, env = do(t, r, http.MethodPatch, fmt.Sprintf("/api/tables/%d", id), admin, gin.H{"status": "occupied"})
	if code != http.StatusOK {
		t.Fatalf("patch table: %d %+v", code, env)
	}
	updated, _ := env.Data["table"].(map[string]any)
	if updated["status"] != "occupied" {
		t.Errorf("table status = %v", updated["status"])
	}
}

func TestAnalyticsEndpoint(t *testing.T) {
	r, db := setupServer(t)
	table, item := seedMenu(t, db)

	customer := registerUser(t, r, "Cust", "cust@example.com", "customer")
	admin := registerUser(t, r, "Admin", "admin@example.com", "admin")

	code, _ := do(t, r, http.MethodPost, "/api/orders", customer, gin.H{
		"tableId": table.ID,
		"items":   []gin.H{{"menuItemId": item.ID, "qty": 2}},
	})
	if code != http.StatusCreated {
		t.Fatalf("create order: %d", code)
	}

	code, env := do(t, r, http.MethodGet, "/api/admin/analytics", admin, nil)
	if code != http.StatusOK {
		t.Fatalf("analytics: %d %+v", code, env)
	}
	if env.Data["todayOrders"] != float64(1) || env.Data["todayRevenue"] != float64(200) {
		t.Errorf("analytics = %+v", env.Data)
	}
	top, _ := env.Data["topItems"].([]any)
	if len(top) != 1 {
		t.Fatalf("topItems = %d, want 1", len(top))
	}
}

func TestPollOrders(t *testing.T) {
	r, db := setupServer(t)
	table, item := seedMenu(t, db)

	customer := registerUser(t, r, "Cust", "cust@example.com", "customer")
	staff := registerUser(t, r, "Staff", "staff@example.com", "staff")

	if code, _ := do(t, r, http.MethodPost, "/api/orders", customer, gin.H{
		"tableId": table.ID,
		"items":   []gin.H{{"menuItemId": item.ID, "qty": 1}},
	}); code != http.StatusCreated {
		t.Fatalf("create order: %d", code)
	}

	code, env := do(t, r, http.MethodGet, "/api/poll/orders", staff, nil)
	if code != http.StatusOK || env.Data["count"] != float64(1) {
		t.Fatalf("poll all: %d %+v", code, env)
	}

	since := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	code, env = do(t, r, http.MethodGet, "/api/poll/orders?since="+since, staff, nil)
	if code != http.StatusOK || env.Data["count"] != float64(0) {
		t.Fatalf("poll since future: %d %+v", code, env)
	}

	if code, _ := do(t, r, http.MethodGet, "/api/poll/orders?since=yesterday", staff, nil); code != http.StatusBadRequest {
		t.Errorf("bad since: status %d", code)
	}
}
