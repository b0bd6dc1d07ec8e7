package controllers

import (
	"net/http"
	"runtime"

	"github.com/gin-gonic/gin"
)

// SystemController exposes a few operational endpoints for the deployment.
type SystemController struct {
	key string
}

func NewSystemController(key string) *SystemController {
	return &SystemController{key: key}
}

// Verify guards the system group with the APP_SYSTEM_KEY query parameter.
func (sc *SystemController) Verify(c *gin.Context) {
	if sc.key == "" {
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "APP_SYSTEM_KEY is not set"})
		return
	}
	if c.Query("key") != sc.key {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "invalid key"})
		return
	}
	c.Next()
}

func (sc *SystemController) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (sc *SystemController) Info(c *gin.Context) {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)

	c.JSON(http.StatusOK, gin.H{
		"go_version":  runtime.Version(),
		"cpu_num":     runtime.NumCPU(),
		"goroutines":  runtime.NumGoroutine(),
		"mem_alloc":   m.Alloc,
		"heap_alloc":  m.HeapAlloc,
		"total_alloc": m.TotalAlloc,
		"sys":         m.Sys,
	})
}

func (sc *SystemController) TriggerGC(c *gin.Context) {
	runtime.GC()
	c.JSON(http.StatusOK, gin.H{"message": "ok"})
}
