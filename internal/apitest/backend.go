// Package apitest provides an in-memory travel-planner backend for client
// tests. It serves the /api/v1/auth endpoints with real bearer-token and
// bcrypt semantics so the session, guard, and HTTP-client tests exercise
// the same flows the production backend implements.
package apitest

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/arx-shy/AI-Travel-Planner-Pro/internal/core/domain"
)

type account struct {
	user         domain.User
	passwordHash []byte
	quota        domain.Quota
}

// Backend is a fake travel-planner API backed by in-memory maps.
type Backend struct {
	router *gin.Engine

	mu         sync.Mutex
	accounts   map[string]*account // keyed by email
	tokens     map[string]string   // token -> email
	nextID     int64
	failLogout bool
}

// New creates a Backend with the auth API registered.
func New() *Backend {
	gin.SetMode(gin.TestMode)

	b := &Backend{
		accounts: make(map[string]*account),
		tokens:   make(map[string]string),
		nextID:   1,
	}

	r := gin.New()
	api := r.Group("/api/v1")
	{
		api.POST("/auth/login", b.login)
		api.POST("/auth/register", b.register)
		api.POST("/auth/logout", b.logout)
		api.GET("/auth/me", b.getMe)
		api.GET("/auth/quota", b.getQuota)
		api.PUT("/auth/me", b.updateMe)
	}
	b.router = r
	return b
}

// Router returns the handler to mount in an httptest server.
func (b *Backend) Router() http.Handler {
	return b.router
}

// Seed registers an account and returns its profile. Free accounts get a
// three-plan quota; pro accounts are unlimited.
func (b *Backend) Seed(email, password, name, membership string) domain.User {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("apitest: hash password: %v", err))
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	now := time.Now().UTC().Truncate(time.Second)
	user := domain.User{
		ID:              b.nextID,
		Email:           email,
		Name:            name,
		MembershipLevel: membership,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	b.nextID++

	quota := domain.Quota{
		MembershipLevel: membership,
		PlanUsageCount:  0,
		PlanLimit:       3,
		RemainingPlans:  3,
	}
	if membership == domain.MembershipPro {
		quota.IsPro = true
		quota.Unlimited = true
	}

	b.accounts[email] = &account{user: user, passwordHash: hash, quota: quota}
	return user
}

// SetQuota replaces the quota snapshot served for the account.
func (b *Backend) SetQuota(email string, quota domain.Quota) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if acct, ok := b.accounts[email]; ok {
		acct.quota = quota
	}
}

// Revoke invalidates an issued token so the next authenticated call 401s.
func (b *Backend) Revoke(token string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.tokens, token)
}

// SetFailLogout makes POST /auth/logout answer 500, for testing the
// best-effort logout contract.
func (b *Backend) SetFailLogout(fail bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failLogout = fail
}

func (b *Backend) login(c *gin.Context) {
	var req domain.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	acct, ok := b.accounts[req.Email]
	if !ok {
		// Don't reveal that the user doesn't exist.
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(req.Password)); err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	token := b.issueToken(req.Email)
	c.JSON(http.StatusOK, domain.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   3600,
		User:        acct.user,
	})
}

func (b *Backend) register(c *gin.Context) {
	var req domain.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b.mu.Lock()
	if _, exists := b.accounts[req.Email]; exists {
		b.mu.Unlock()
		c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
		return
	}
	b.mu.Unlock()

	b.Seed(req.Email, req.Password, req.Name, domain.MembershipFree)

	b.mu.Lock()
	acct := b.accounts[req.Email]
	token := b.issueToken(req.Email)
	b.mu.Unlock()

	c.JSON(http.StatusCreated, domain.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   3600,
		User:        acct.user,
	})
}

func (b *Backend) logout(c *gin.Context) {
	b.mu.Lock()
	fail := b.failLogout
	b.mu.Unlock()
	if fail {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}

func (b *Backend) getMe(c *gin.Context) {
	acct, ok := b.authenticate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, acct.user)
}

func (b *Backend) getQuota(c *gin.Context) {
	acct, ok := b.authenticate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, acct.quota)
}

func (b *Backend) updateMe(c *gin.Context) {
	acct, ok := b.authenticate(c)
	if !ok {
		return
	}

	var upd domain.ProfileUpdate
	if err := c.ShouldBindJSON(&upd); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	b.mu.Lock()
	user := &acct.user
	if upd.Name != nil {
		user.Name = *upd.Name
	}
	if upd.AvatarURL != nil {
		user.AvatarURL = *upd.AvatarURL
	}
	if upd.Phone != nil {
		user.Phone = *upd.Phone
	}
	if upd.Gender != nil {
		user.Gender = *upd.Gender
	}
	if upd.BirthDate != nil {
		user.BirthDate = *upd.BirthDate
	}
	if upd.City != nil {
		user.City = *upd.City
	}
	if upd.Country != nil {
		user.Country = *upd.Country
	}
	if upd.Bio != nil {
		user.Bio = *upd.Bio
	}
	if upd.PreferredLanguage != nil {
		user.PreferredLanguage = *upd.PreferredLanguage
	}
	if upd.PreferredCurrency != nil {
		user.PreferredCurrency = *upd.PreferredCurrency
	}
	if upd.SocialAccounts != nil {
		user.SocialAccounts = upd.SocialAccounts
	}
	user.UpdatedAt = time.Now().UTC().Truncate(time.Second)
	out := *user
	b.mu.Unlock()

	c.JSON(http.StatusOK, out)
}

// authenticate resolves the bearer token to an account, answering 401 when
// the header is missing, malformed, or revoked.
func (b *Backend) authenticate(c *gin.Context) (*account, bool) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
		return nil, false
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	email, ok := b.tokens[token]
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return nil, false
	}
	acct, ok := b.accounts[email]
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
		return nil, false
	}
	return acct, true
}

// issueToken mints and records a fresh token. Caller holds b.mu.
func (b *Backend) issueToken(email string) string {
	token := "test-token-" + uuid.NewString()
	b.tokens[token] = email
	return token
}
