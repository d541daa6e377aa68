package main

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"travelbe/models"
	"travelbe/pkg/passport"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

func setupRoutes(r *gin.Engine) {
	r.POST("/register", registerHandler)
	r.POST("/login", loginHandler)
	r.POST("/refresh", refreshHandler)
	r.POST("/revoke_refresh", revokeRefreshHandler)
	authGroup := r.Group("")
	authGroup.Use(jwtAuthMiddleware())
	authGroup.GET("/me", meHandler)
	authGroup.POST("/clients", createClientHandler)
	authGroup.GET("/clients", listClientsHandler)
	authGroup.GET("/clients/:id", getClientHandler)
	authGroup.POST("/passengers", createPassengerHandler)
	authGroup.GET("/passengers", listPassengersHandler)
	authGroup.GET("/passengers/:id", getPassengerHandler)
	authGroup.POST("/passengers/:id/passport", uploadPassportHandler)
	authGroup.POST("/sales", createSaleHandler)
	authGroup.GET("/sales", listSalesHandler)
	authGroup.GET("/sales/revenue", revenueSummaryHandler)
	authGroup.POST("/sales/:id/payments", createPaymentHandler)
	authGroup.GET("/sales/:id/payments", listPaymentsHandler)
	authGroup.GET("/notifications", listNotificationsHandler)
}

func jwtAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || len(authHeader) < 8 || authHeader[:7] != "Bearer " {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing or invalid Authorization header"})
			c.Abort()
			return
		}
		tokenString := authHeader[7:]
		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, jwt.ErrInvalidKeyType
			}
			return jwtSecret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
			c.Abort()
			return
		}
		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid claims"})
			c.Abort()
			return
		}
		username, _ := claims["username"].(string)
		role, _ := claims["role"].(string)
		c.Set("username", username)
		if role != "" {
			c.Set("role", role)
		}
		c.Next()
	}
}

func meHandler(c *gin.Context) {
	usernameVal, _ := c.Get("username")
	if usernameVal == nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "context missing username"})
		return
	}
	username := usernameVal.(string)
	c.JSON(http.StatusOK, gin.H{"username": username})
}

// getUserFromContext fetches the currently authenticated user using the username set by jwtAuthMiddleware
func getUserFromContext(c *gin.Context) (*models.User, bool) {
	unameVal, _ := c.Get("username")
	if unameVal == nil {
		return nil, false
	}
	uname := unameVal.(string)
	var user models.User
	if err := db.Where("username = ?", uname).First(&user).Error; err != nil {
		return nil, false
	}
	return &user, true
}

func isAdmin(c *gin.Context) bool {
	role, _ := c.Get("role")
	return role == "administrator"
}

func registerHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := Register(req.Username, req.Password); err != nil {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "user registered successfully"})
}

func loginHandler(c *gin.Context) {
	var req struct {
		Username string `json:"username" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	user, err := Login(req.Username, req.Password)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	// Generate JWT token. Resolve role name from RoleID (we only store role_id).
	roleName := ""
	if user.RoleID != nil {
		var r models.Role
		if err := db.First(&r, *user.RoleID).Error; err == nil {
			roleName = r.Name
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": user.Username,
		"role":     roleName,
		"exp":      time.Now().Add(time.Hour * 24).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	refreshToken, err := createAndStoreRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "login successful", "token": tokenString, "refresh_token": refreshToken})
}

// createAndStoreRefreshToken generates a random refresh token, stores its hash with expiry and returns the raw token string
func createAndStoreRefreshToken(userID uint) (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)
	h := sha256.Sum256([]byte(token))
	th := hex.EncodeToString(h[:])
	rt := models.RefreshToken{UserID: userID, TokenHash: th, ExpiresAt: time.Now().Add(30 * 24 * time.Hour)}
	if err := db.Create(&rt).Error; err != nil {
		return "", err
	}
	return token, nil
}

func findRefreshTokenByRaw(token string) (*models.RefreshToken, error) {
	h := sha256.Sum256([]byte(token))
	th := hex.EncodeToString(h[:])
	var rt models.RefreshToken
	if err := db.Where("token_hash = ?", th).First(&rt).Error; err != nil {
		return nil, err
	}
	return &rt, nil
}

// refreshHandler exchanges a refresh token for a new access token and rotates the refresh token
func refreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rt, err := findRefreshTokenByRaw(req.RefreshToken)
	if err != nil || rt.Revoked || time.Now().After(rt.ExpiresAt) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired refresh token"})
		return
	}
	var user models.User
	if err := db.First(&user, rt.UserID).Error; err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	roleName := ""
	if user.RoleID != nil {
		var r models.Role
		if err := db.First(&r, *user.RoleID).Error; err == nil {
			roleName = r.Name
		}
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"username": user.Username,
		"role":     roleName,
		"exp":      time.Now().Add(15 * time.Minute).Unix(),
	})
	tokenString, err := token.SignedString(jwtSecret)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate token"})
		return
	}
	// rotate refresh token: revoke existing and create new one
	db.Model(&models.RefreshToken{}).Where("id = ?", rt.ID).Update("revoked", true)
	newRT, err := createAndStoreRefreshToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to rotate refresh token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": tokenString, "refresh_token": newRT})
}

// revokeRefreshHandler revokes a given refresh token (useful on logout)
func revokeRefreshHandler(c *gin.Context) {
	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rt, err := findRefreshTokenByRaw(req.RefreshToken)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "refresh token not found"})
		return
	}
	rt.Revoked = true
	if err := db.Save(rt).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to revoke token"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "refresh token revoked"})
}

// createClientHandler registers a new agency client for the authenticated agent.
func createClientHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	client := models.Client{UserID: user.ID, Name: req.Name, Email: req.Email, Phone: req.Phone, Address: req.Address}
	if err := db.Create(&client).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": client.ID})
}

// listClientsHandler lists clients for the authenticated agent (admin sees all).
func listClientsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var clients []models.Client
	q := db.Model(&models.Client{})
	if !isAdmin(c) {
		q = q.Where("user_id = ?", user.ID)
	}
	if err := q.Order("id desc").Limit(200).Find(&clients).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, clients)
}

func getClientHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var client models.Client
	if err := db.Preload("Passengers").First(&client, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if !isAdmin(c) && client.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return
	}
	c.JSON(http.StatusOK, client)
}

// ownedClient loads a client and checks ownership for the current user.
func ownedClient(c *gin.Context, clientID uint) (*models.Client, bool) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	var client models.Client
	if err := db.First(&client, clientID).Error; err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "client not found"})
		return nil, false
	}
	if !isAdmin(c) && client.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return nil, false
	}
	return &client, true
}

func createPassengerHandler(c *gin.Context) {
	var req struct {
		ClientID       uint   `json:"client_id" binding:"required"`
		GivenName      string `json:"given_name"`
		Surname        string `json:"surname"`
		DocumentNumber string `json:"document_number"`
		Nationality    string `json:"nationality"`
		DateOfBirth    string `json:"date_of_birth"`
		ExpirationDate string `json:"expiration_date"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := ownedClient(c, req.ClientID); !ok {
		return
	}
	p := models.Passenger{
		ClientID:       req.ClientID,
		GivenName:      req.GivenName,
		Surname:        req.Surname,
		DocumentNumber: req.DocumentNumber,
		Nationality:    req.Nationality,
		DateOfBirth:    req.DateOfBirth,
		ExpirationDate: req.ExpirationDate,
		PassportStatus: models.PassportPending,
	}
	if err := db.Create(&p).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": p.ID})
}

func listPassengersHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var passengers []models.Passenger
	q := db.Model(&models.Passenger{})
	if !isAdmin(c) {
		q = q.Joins("JOIN clients ON clients.id = passengers.client_id").Where("clients.user_id = ?", user.ID)
	}
	if err := q.Order("passengers.id desc").Limit(200).Find(&passengers).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, passengers)
}

func getPassengerHandler(c *gin.Context) {
	var p models.Passenger
	if err := db.Preload("Uploads").First(&p, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	if _, ok := ownedClient(c, p.ClientID); !ok {
		return
	}
	c.JSON(http.StatusOK, p)
}

// uploadPassportHandler receives a passport/ID image for a passenger, stores
// it under UPLOAD_BASE and runs the extraction pipeline. The passenger's
// document fields are only overwritten by a higher-confidence extraction.
func uploadPassportHandler(c *gin.Context) {
	var p models.Passenger
	if err := db.First(&p, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "passenger not found"})
		return
	}
	if _, ok := ownedClient(c, p.ClientID); !ok {
		return
	}
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file missing"})
		return
	}
	if file.Size > 10*1024*1024 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file too large (max 10MB)"})
		return
	}
	ct := file.Header.Get("Content-Type")
	// uuid-prefixed store name so repeated uploads never collide
	storeName := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	baseDir := uploadBaseDir()
	relPath := filepath.Join("passports", storeName)
	fullPath := filepath.Join(baseDir, relPath)
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "mkdir failed"})
		return
	}
	if err := c.SaveUploadedFile(file, fullPath); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "save failed"})
		return
	}

	res := passport.ExtractFromImage(fullPath)

	up := models.Upload{
		PassengerID: p.ID,
		FileName:    file.Filename,
		StorePath:   relPath,
		ContentType: ct,
		RawText:     res.RawText,
		Confidence:  res.Confidence,
		Method:      res.Method,
	}
	if !res.Success {
		up.Failed = true
		if res.Error != nil {
			up.FailedReason = *res.Error
		}
	}
	if err := db.Create(&up).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "db save failed"})
		return
	}

	if res.Success && res.Data != nil && res.Confidence > p.ExtractConfidence {
		p.GivenName = res.Data.Name
		p.Surname = res.Data.Surname
		p.DocumentNumber = res.Data.DocumentNumber
		p.Nationality = res.Data.Nationality
		p.DateOfBirth = res.Data.DateOfBirth
		p.ExpirationDate = res.Data.ExpirationDate
		p.ExtractConfidence = res.Confidence
		p.PassportStatus = models.PassportExtracted
		db.Save(&p)
	} else if !res.Success && p.PassportStatus == models.PassportPending {
		p.PassportStatus = models.PassportFailed
		db.Save(&p)
	}

	c.JSON(http.StatusOK, gin.H{"upload_id": up.ID, "extraction": res})
}

func createSaleHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var req struct {
		ClientID      uint   `json:"client_id" binding:"required"`
		PassengerID   *uint  `json:"passenger_id"`
		Destination   string `json:"destination" binding:"required"`
		DepartureDate string `json:"departure_date" binding:"required"` // RFC3339
		ReturnDate    string `json:"return_date"`
		Price         int64  `json:"price" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if _, ok := ownedClient(c, req.ClientID); !ok {
		return
	}
	dep, err := time.Parse(time.RFC3339, req.DepartureDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid departure_date"})
		return
	}
	sale := models.Sale{
		UserID:        user.ID,
		ClientID:      req.ClientID,
		PassengerID:   req.PassengerID,
		Destination:   req.Destination,
		DepartureDate: dep,
		Price:         req.Price,
		Status:        "open",
	}
	if req.ReturnDate != "" {
		if t, err := time.Parse(time.RFC3339, req.ReturnDate); err == nil {
			sale.ReturnDate = &t
		}
	}
	if err := db.Create(&sale).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"id": sale.ID})
}

func listSalesHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var sales []models.Sale
	q := db.Model(&models.Sale{})
	if !isAdmin(c) {
		q = q.Where("user_id = ?", user.ID)
	}
	if err := q.Order("id desc").Limit(200).Find(&sales).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, sales)
}

// revenueSummaryHandler returns the sum of sale prices grouped by month.
func revenueSummaryHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	type Result struct {
		Month string
		Total int64
	}
	var results []Result
	q := db.Model(&models.Sale{})
	if !isAdmin(c) {
		q = q.Where("user_id = ?", user.ID)
	}
	// Use to_char for Postgres to group by YYYY-MM
	rows, err := q.Select("to_char(departure_date, 'YYYY-MM') as month, sum(price) as total").Group("month").Rows()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	defer rows.Close()
	for rows.Next() {
		var r Result
		rows.Scan(&r.Month, &r.Total)
		results = append(results, r)
	}
	c.JSON(http.StatusOK, results)
}

// ownedSale loads a sale and checks ownership for the current user.
func ownedSale(c *gin.Context) (*models.Sale, bool) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return nil, false
	}
	var sale models.Sale
	if err := db.First(&sale, c.Param("id")).Error; err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return nil, false
	}
	if !isAdmin(c) && sale.UserID != user.ID {
		c.JSON(http.StatusForbidden, gin.H{"error": "forbidden"})
		return nil, false
	}
	return &sale, true
}

func createPaymentHandler(c *gin.Context) {
	sale, ok := ownedSale(c)
	if !ok {
		return
	}
	var req struct {
		Amount int64  `json:"amount" binding:"required"`
		Method string `json:"method"`
		PaidAt string `json:"paid_at"` // optional RFC3339
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	pay := models.Payment{SaleID: sale.ID, Amount: req.Amount, Method: req.Method, PaidAt: time.Now()}
	if req.PaidAt != "" {
		if t, err := time.Parse(time.RFC3339, req.PaidAt); err == nil {
			pay.PaidAt = t
		}
	}
	if err := db.Create(&pay).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "create failed"})
		return
	}
	// close the sale when the balance reaches zero
	var paid int64
	db.Model(&models.Payment{}).Where("sale_id = ?", sale.ID).Select("coalesce(sum(amount),0)").Scan(&paid)
	if paid >= sale.Price && sale.Status == "open" {
		sale.Status = "paid"
		db.Save(sale)
	}
	c.JSON(http.StatusOK, gin.H{"id": pay.ID, "paid_total": paid, "balance": sale.Price - paid})
}

func listPaymentsHandler(c *gin.Context) {
	sale, ok := ownedSale(c)
	if !ok {
		return
	}
	var payments []models.Payment
	if err := db.Where("sale_id = ?", sale.ID).Order("id").Find(&payments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, payments)
}

func listNotificationsHandler(c *gin.Context) {
	user, ok := getUserFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "user not found"})
		return
	}
	var notes []models.Notification
	q := db.Model(&models.Notification{})
	if !isAdmin(c) {
		q = q.Joins("JOIN sales ON sales.id = notifications.sale_id").Where("sales.user_id = ?", user.ID)
	}
	if err := q.Order("notifications.id desc").Limit(200).Find(&notes).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "query failed"})
		return
	}
	c.JSON(http.StatusOK, notes)
}
