package authController

import (
	"log"

	"pitchhub/config"
	"pitchhub/database"
	"pitchhub/middleware"
	"pitchhub/models"
	authValidator "pitchhub/validators/auth"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"
)

// Home renders the landing page for a logged-in user
func Home(c *fiber.Ctx) error {
	return c.Render("home", fiber.Map{
		"username": c.Locals("username"),
		"message":  middleware.ConsumeFlash(c),
	})
}

// RegisterPage renders the registration form
func RegisterPage(c *fiber.Ctx) error {
	return c.Render("register", fiber.Map{"message": middleware.ConsumeFlash(c)})
}

// Register creates a new account
func Register(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedRegister").(*authValidator.RegisterRequest)
	if !ok {
		return c.Render("register", fiber.Map{"message": "Invalid form submission."})
	}

	db := database.Database.Db

	// Check if username already exists
	if err := db.Where("username = ?", reqData.Username).First(&models.User{}).Error; err == nil {
		return c.Render("register", fiber.Map{"message": "Username already exists."})
	}

	// Hash Password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(reqData.Password), config.AppConfig.SaltRound)
	if err != nil {
		log.Printf("Error hashing password: %v", err)
		return c.Render("register", fiber.Map{"message": "Failed to process your request!"})
	}

	newUser := models.User{
		Username: reqData.Username,
		Password: string(hashedPassword),
	}

	if err := db.Create(&newUser).Error; err != nil {
		log.Printf("Error saving user to database: %v", err)
		return c.Render("register", fiber.Map{"message": "Failed to register user!"})
	}

	middleware.SetFlash(c, "Registration successful! Please log in.")
	return c.Redirect("/login", fiber.StatusFound)
}

// LoginPage renders the login form
func LoginPage(c *fiber.Ctx) error {
	return c.Render("login", fiber.Map{"message": middleware.ConsumeFlash(c)})
}

// Login authenticates the user and establishes the session
func Login(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLogin").(*authValidator.LoginRequest)
	if !ok {
		return c.Render("login", fiber.Map{"message": "Invalid form submission."})
	}

	db := database.Database.Db

	trackAttempt := func(success bool) {
		record := models.LoginTracking{
			Username:  reqData.Username,
			IPAddress: c.IP(),
			Device:    c.Get("User-Agent"),
			Success:   success,
		}
		if err := db.Create(&record).Error; err != nil {
			log.Printf("Error recording login attempt: %v", err)
		}
	}

	var user models.User
	result := db.Where("username = ?", reqData.Username).First(&user)

	if result.Error != nil || bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(reqData.Password)) != nil {
		trackAttempt(false)
		return c.Render("login", fiber.Map{"message": "Invalid username or password."})
	}

	token, err := middleware.GenerateSessionToken(user.Username)
	if err != nil {
		log.Printf("Error signing session token: %v", err)
		return c.Render("login", fiber.Map{"message": "Failed to process your request!"})
	}

	middleware.SetSessionCookie(c, token)
	trackAttempt(true)

	middleware.SetFlash(c, "Login successful!")
	return c.Redirect("/", fiber.StatusFound)
}

// Logout destroys the session
func Logout(c *fiber.Ctx) error {
	middleware.ClearSessionCookie(c)
	middleware.SetFlash(c, "You have been logged out.")
	return c.Redirect("/login", fiber.StatusFound)
}
