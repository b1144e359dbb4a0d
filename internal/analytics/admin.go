package analytics

import (
	"crypto/subtle"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
)

const cookieName = "admin_token"

// Admin serves the login-protected stats pages.
type Admin struct {
	store     *Store
	user      string
	password  string
	token     string
	retention int
}

// NewAdmin returns the admin surface for store. An empty password is replaced
// by a random one, printed only in debug mode. retention is the default purge
// age in months.
func NewAdmin(store *Store, user, password string, retention int) (*Admin, error) {
	token, err := randomHex(32)
	if err != nil {
		return nil, err
	}
	if password == "" {
		if password, err = randomHex(12); err != nil {
			return nil, err
		}
		if gin.Mode() == gin.DebugMode {
			log.Printf("Admin password (dev only): %s", password)
		}
	}
	log.Printf("Admin access available at: /admin/login")
	return &Admin{store: store, user: user, password: password, token: token, retention: retention}, nil
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}

// authMiddleware sends requests without the session cookie to the login page.
func (a *Admin) authMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || !equal(token, a.token) {
			c.Redirect(http.StatusFound, "/admin/login")
			c.Abort()
			return
		}
		c.Next()
	}
}

// Register mounts the admin routes on r.
func (a *Admin) Register(r gin.IRouter) {
	r.GET("/admin/login", func(c *gin.Context) {
		c.HTML(http.StatusOK, "admin-login.html", gin.H{"title": "Admin Login"})
	})

	r.POST("/admin/login", func(c *gin.Context) {
		userOK := equal(c.PostForm("username"), a.user)
		passOK := equal(c.PostForm("password"), a.password)
		if !userOK || !passOK {
			log.Printf("Failed admin login attempt from %s", a.store.HashIP(c.ClientIP()))
			c.HTML(http.StatusUnauthorized, "admin-login.html", gin.H{
				"title": "Admin Login",
				"error": "Invalid credentials",
			})
			return
		}
		c.SetCookie(cookieName, a.token, 3600*24, "/admin", "", false, true)
		log.Printf("Admin login successful from %s", a.store.HashIP(c.ClientIP()))
		c.Redirect(http.StatusFound, "/admin/dashboard")
	})

	r.GET("/admin/logout", func(c *gin.Context) {
		c.SetCookie(cookieName, "", -1, "/admin", "", false, true)
		c.Redirect(http.StatusFound, "/admin/login")
	})

	g := r.Group("/admin")
	g.Use(a.authMiddleware())

	g.GET("/dashboard", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			log.Printf("Error loading admin stats: %v", err)
			c.HTML(http.StatusInternalServerError, "admin-dashboard.html", gin.H{
				"title": "Dashboard",
				"error": "Failed to load statistics",
			})
			return
		}
		c.HTML(http.StatusOK, "admin-dashboard.html", gin.H{"title": "Dashboard", "stats": stats})
	})

	g.GET("/api/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, stats)
	})

	g.GET("/export/stats", func(c *gin.Context) {
		stats, err := a.store.Stats(c.Request.Context())
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Header("Content-Disposition", "attachment; filename=admin-stats.json")
		log.Printf("Admin stats exported by %s", a.store.HashIP(c.ClientIP()))
		c.JSON(http.StatusOK, stats)
	})

	g.POST("/privacy/purge", func(c *gin.Context) {
		var req struct {
			Months int `form:"months" binding:"omitempty,min=1,max=120"`
		}
		if err := c.ShouldBind(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "months must be between 1 and 120"})
			return
		}
		months := a.retention
		if req.Months > 0 {
			months = req.Months
		}
		n, err := a.store.Purge(c.Request.Context(), months)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"deleted": n})
	})
}
