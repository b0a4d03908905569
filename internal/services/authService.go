package services

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/db"
	"github.com/saphaniox/sap-technologies.ug-sub002/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"
)

const (
	maxFailedLogins = 5
	lockoutDuration = 15 * time.Minute
)

var (
	jwtSecret     []byte
	maxPhotoBytes int64 = 5 * 1024 * 1024
)

// Init sets the values services read from config.
func Init(secret string, photoLimit int64) {
	jwtSecret = []byte(secret)
	if photoLimit > 0 {
		maxPhotoBytes = photoLimit
	}
}

// HashPassword hashes a password using bcrypt
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a hashed password
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateJWT generates a JWT token with user ID and role
func GenerateJWT(userID string, role string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"role":    role,
		"exp":     time.Now().Add(time.Hour * 4).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtSecret)
}

// RegisterUser registers a new user. New accounts always get the "user"
// role; admins are promoted directly in the database.
func RegisterUser(ctx context.Context, email, password, name string) (models.User, error) {
	collection := db.GetCollection("users")

	hashedPassword, err := HashPassword(password)
	if err != nil {
		return models.User{}, err
	}

	now := time.Now()
	user := models.User{
		ID:        primitive.NewObjectID(),
		Email:     email,
		Password:  hashedPassword,
		Name:      name,
		Role:      "user",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if _, err = collection.InsertOne(ctx, user); err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return models.User{}, ErrEmailInUse
		}
		return models.User{}, err
	}

	user.Password = ""
	return user, nil
}

// LoginUser authenticates a user and returns a JWT with role info.
// Five consecutive failures lock the account for fifteen minutes.
func LoginUser(ctx context.Context, email, password string) (string, models.User, error) {
	collection := db.GetCollection("users")

	var user models.User
	err := collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		return "", models.User{}, ErrInvalidCredentials
	}

	if !user.IsActive {
		return "", models.User{}, ErrAccountDisabled
	}
	if time.Now().Before(user.LockedUntil) {
		return "", models.User{}, ErrAccountLocked
	}

	if !VerifyPassword(password, user.Password) {
		update := bson.M{"$inc": bson.M{"failed_logins": 1}}
		if user.FailedLogins+1 >= maxFailedLogins {
			update["$set"] = bson.M{"locked_until": time.Now().Add(lockoutDuration)}
		}
		collection.UpdateOne(ctx, bson.M{"_id": user.ID}, update)
		return "", models.User{}, ErrInvalidCredentials
	}

	collection.UpdateOne(ctx, bson.M{"_id": user.ID}, bson.M{"$set": bson.M{
		"failed_logins": 0,
		"locked_until":  time.Time{},
		"last_login":    time.Now(),
	}})

	token, err := GenerateJWT(user.ID.Hex(), user.Role)
	if err != nil {
		return "", models.User{}, err
	}

	user.Password = ""
	return token, user, nil
}

// GetUser fetches a user by hex ID.
func GetUser(ctx context.Context, userID string) (models.User, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	var user models.User
	err = db.GetCollection("users").FindOne(ctx, bson.M{"_id": objID}).Decode(&user)
	if err != nil {
		return models.User{}, ErrNotFound
	}
	user.Password = ""
	return user, nil
}

// UpdateProfile updates the caller's display name.
func UpdateProfile(ctx context.Context, userID, name string) (models.User, error) {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	_, err = db.GetCollection("users").UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"name": name, "updated_at": time.Now()}},
	)
	if err != nil {
		return models.User{}, err
	}
	return GetUser(ctx, userID)
}

// ChangePassword verifies the current password before setting a new one.
func ChangePassword(ctx context.Context, userID, current, newPassword string) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}

	collection := db.GetCollection("users")
	var user models.User
	if err := collection.FindOne(ctx, bson.M{"_id": objID}).Decode(&user); err != nil {
		return ErrNotFound
	}

	if !VerifyPassword(current, user.Password) {
		return ErrInvalidCredentials
	}

	hashed, err := HashPassword(newPassword)
	if err != nil {
		return err
	}

	_, err = collection.UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"password": hashed, "updated_at": time.Now()}},
	)
	return err
}

// ListUsers returns all accounts for the admin dashboard.
func ListUsers(ctx context.Context) ([]models.User, error) {
	cursor, err := db.GetCollection("users").Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

// SetUserActive soft-enables or disables an account.
func SetUserActive(ctx context.Context, userID string, active bool) error {
	objID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return ErrNotFound
	}

	result, err := db.GetCollection("users").UpdateOne(ctx,
		bson.M{"_id": objID},
		bson.M{"$set": bson.M{"is_active": active, "updated_at": time.Now()}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}
