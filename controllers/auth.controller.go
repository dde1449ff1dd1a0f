package controllers

import (
	"context"
	"net/http"
	"time"

	"genzshop-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/o1egl/paseto"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// tokenAudience scopes admin tokens to this application.
const tokenAudience = "genzshop-admin"

// Login authenticates an admin and mints a PASETO token.
func (ctrl *Controller) Login(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var admin models.Admin
	collection := ctrl.DB.Collection("admins")
	err := collection.FindOne(ctx, bson.M{"username": req.Username}).Decode(&admin)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.Password), []byte(req.Password)) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}

	now := time.Now()
	exp := now.Add(24 * time.Hour)
	jsonToken := paseto.JSONToken{
		Subject:    admin.ID.Hex(),
		IssuedAt:   now,
		Expiration: exp,
	}
	token, err := paseto.NewV2().Encrypt(ctrl.PasetoSecretKey, jsonToken, tokenAudience)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	admin.Password = ""
	c.JSON(http.StatusOK, gin.H{"message": "Login successful", "admin": admin, "token": token})
}

// Register creates a new admin account.
func (ctrl *Controller) Register(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	collection := ctrl.DB.Collection("admins")
	var existingAdmin models.Admin
	if err := collection.FindOne(ctx, bson.M{"username": req.Username}).Decode(&existingAdmin); err == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "Username already exists"})
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
		return
	}

	admin := models.Admin{
		Username:  req.Username,
		Email:     req.Email,
		Password:  string(hashedPassword),
		CreatedAt: time.Now(),
	}

	result, err := collection.InsertOne(ctx, admin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	admin.ID = result.InsertedID.(primitive.ObjectID)
	admin.Password = ""
	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful", "admin": admin})
}

// GetProfile returns the admin identified by the validated token.
func (ctrl *Controller) GetProfile(c *gin.Context) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	subject := c.GetString("adminID")
	objectID, err := primitive.ObjectIDFromHex(subject)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid token subject"})
		return
	}

	var admin models.Admin
	collection := ctrl.DB.Collection("admins")
	err = collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&admin)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Admin not found"})
		return
	}

	admin.Password = ""
	c.JSON(http.StatusOK, gin.H{"admin": admin})
}
