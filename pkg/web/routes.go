// Package web provides API routes for the web server.
package web

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/BTStudios/ModTrackGo/pkg/database"
	"github.com/BTStudios/ModTrackGo/pkg/discord"
	"github.com/BTStudios/ModTrackGo/pkg/quota"
	"github.com/gin-gonic/gin"
)

// SetupAPIRoutes sets up the API routes
func SetupAPIRoutes(s *Server, svc *quota.Service) {
	api := s.Group("/api")
	{
		api.GET("/status", statusHandler)
		api.GET("/health", healthHandler)
		api.GET("/bot", botInfoHandler)
		api.GET("/guilds/:guildId/moderators", moderatorsHandler(svc))
		api.GET("/guilds/:guildId/moderators/:userId/stats", moderatorStatsHandler(svc))
	}
}

// statusHandler returns the bot and database status
func statusHandler(c *gin.Context) {
	db := database.Get()
	client := discord.Get()

	dbStatus, dbOnline := db.GetStatus()

	botOnline := false
	if client != nil {
		botOnline = client.IsReady()
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"database": gin.H{
			"status":   dbStatus,
			"isOnline": dbOnline,
		},
		"bot": gin.H{
			"isOnline": botOnline,
		},
	})
}

// healthHandler returns a simple health check response
func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"message": "ModTrack is running",
	})
}

// botInfoHandler returns information about the bot
func botInfoHandler(c *gin.Context) {
	client := discord.Get()

	if client == nil || !client.IsReady() {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error":   "Bot Offline",
			"message": "The bot is not available right now.",
		})
		return
	}

	user := client.Session.State.User

	c.JSON(http.StatusOK, gin.H{
		"id":            user.ID,
		"username":      user.Username,
		"discriminator": user.Discriminator,
		"avatar":        user.Avatar,
		"guilds":        client.GuildCount(),
		"isReady":       client.IsReady(),
	})
}

// moderatorsHandler lists the active moderators of a guild
func moderatorsHandler(svc *quota.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		guildID := c.Param("guildId")

		mods, err := svc.ActiveModerators(c.Request.Context(), guildID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load moderators"})
			return
		}

		out := make([]gin.H, 0, len(mods))
		for _, mod := range mods {
			out = append(out, gin.H{
				"userId":                   mod.UserID,
				"quotas":                   mod.Quotas(),
				"consecutiveCompletedWeeks": mod.ConsecutiveWeeks,
				"vacationDays":             mod.VacationDays,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"guildId":    guildID,
			"moderators": out,
		})
	}
}

// moderatorStatsHandler returns a moderator's action counts over the last N
// days (default 7, capped at 90)
func moderatorStatsHandler(svc *quota.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		guildID := c.Param("guildId")
		userID := c.Param("userId")

		days := 7
		if raw := c.Query("days"); raw != "" {
			n, err := strconv.Atoi(raw)
			if err != nil || n <= 0 || n > 90 {
				c.JSON(http.StatusBadRequest, gin.H{"error": "days must be between 1 and 90"})
				return
			}
			days = n
		}

		mod, err := svc.Moderator(c.Request.Context(), guildID, userID)
		if errors.Is(err, database.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Moderator not found"})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load moderator"})
			return
		}

		end := time.Now().Unix()
		start := end - int64(days)*86400

		counts, err := svc.CountByType(c.Request.Context(), guildID, userID, start, end)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count actions"})
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"guildId": guildID,
			"userId":  userID,
			"days":    days,
			"counts":  counts,
			"quotas":  mod.Quotas(),
			"streak":  mod.ConsecutiveWeeks,
			"active":  mod.Active,
		})
	}
}
