package auth

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/access"
)

// User is one entry of the login registry.
type User struct {
	UserID      string      `json:"UserID"`
	Username    string      `json:"Username"`
	Password    string      `json:"-"`
	Role        access.Role `json:"Role"`
	Name        string      `json:"Name"`
	Email       string      `json:"Email"`
	PhysicianID *int        `json:"PhysicianID,omitempty"`
	PatientID   *int        `json:"PatientID,omitempty"`
}

func intPtr(i int) *int { return &i }

// DefaultUsers is the demo login registry seeded alongside the demo dataset.
func DefaultUsers() []User {
	return []User{
		{UserID: "ADM001", Username: "admin", Password: "Admin@2024", Role: access.RoleAdministrator, Name: "System Administrator", Email: "admin@lrch.ca"},
		{UserID: "PHY001", Username: "dwilson", Password: "Cardio#1234", Role: access.RolePhysician, Name: "Dr. David Wilson", Email: "david.wilson@lrch.ca", PhysicianID: intPtr(1)},
		{UserID: "PHY002", Username: "sbrown", Password: "Peds@5678", Role: access.RolePhysician, Name: "Dr. Sarah Brown", Email: "sarah.brown@lrch.ca", PhysicianID: intPtr(2)},
		{UserID: "VWR001", Username: "jreceptionist", Password: "View@1234", Role: access.RoleViewer, Name: "Jane Receptionist", Email: "jane.r@lrch.ca"},
		{UserID: "PAT001", Username: "jsmith", Password: "Patient#123", Role: access.RolePatient, Name: "John Smith", Email: "john.smith@email.com", PatientID: intPtr(1)},
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// tokenTTL bounds how long an issued session token is accepted.
const tokenTTL = 12 * time.Hour

// LoginHandler returns the POST /api/login handler. On success it responds
// with a signed token and the user's profile.
func LoginHandler(key []byte, users []User) echo.HandlerFunc {
	return func(c echo.Context) error {
		var req loginRequest
		if err := c.Bind(&req); err != nil {
			return c.JSON(http.StatusBadRequest, map[string]interface{}{
				"error": "invalid request body",
			})
		}

		for _, u := range users {
			if u.Username == req.Username && u.Password == req.Password {
				token, err := IssueToken(key, u.UserID, string(u.Role), u.Name, tokenTTL)
				if err != nil {
					return c.JSON(http.StatusInternalServerError, map[string]interface{}{
						"error": "failed to issue token",
					})
				}
				return c.JSON(http.StatusOK, map[string]interface{}{
					"success": true,
					"token":   token,
					"user":    u,
				})
			}
		}

		return c.JSON(http.StatusUnauthorized, map[string]interface{}{
			"error": "invalid username or password",
		})
	}
}
