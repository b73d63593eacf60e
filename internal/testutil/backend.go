package testutil

import (
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync"

	"github.com/akyairhashvil/aulaplan/internal/models"
	"github.com/gin-gonic/gin"
)

// Backend is an in-memory implementation of the lesson-plan REST contract
// served under /api, for client and controller tests.
type Backend struct {
	*httptest.Server

	mu         sync.Mutex
	groups     []models.Group
	weeks      []models.Week
	nextID     int
	requestIDs []string
	// FailNext, when non-zero, makes the next request answer with that status
	// and an empty body.
	FailNext int
}

func NewBackend(groups ...models.Group) *Backend {
	gin.SetMode(gin.TestMode)
	b := &Backend{groups: groups, nextID: 100}

	r := gin.New()
	r.Use(b.recordRequest, b.injectFailure)
	api := r.Group("/api")
	api.GET("/groups", b.listGroups)
	api.GET("/weeks", b.listWeeks)
	api.POST("/weeks", b.createWeek)
	api.PUT("/weeks/:id", b.updateWeek)
	api.DELETE("/weeks/:id", b.deleteWeek)
	api.GET("/export/json", b.exportJSON)
	api.GET("/export/pdf", b.exportPDF)

	b.Server = httptest.NewServer(r)
	return b
}

// BaseURL is the API root to hand to client.New.
func (b *Backend) BaseURL() string { return b.URL + "/api" }

// Seed appends weeks as if they had been created earlier.
func (b *Backend) Seed(weeks ...models.Week) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.weeks = append(b.weeks, weeks...)
}

// Weeks returns a snapshot of all stored weeks.
func (b *Backend) Weeks() []models.Week {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]models.Week, len(b.weeks))
	copy(out, b.weeks)
	return out
}

// RequestIDs returns the X-Request-ID values seen so far.
func (b *Backend) RequestIDs() []string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]string(nil), b.requestIDs...)
}

func (b *Backend) recordRequest(c *gin.Context) {
	b.mu.Lock()
	b.requestIDs = append(b.requestIDs, c.GetHeader("X-Request-ID"))
	b.mu.Unlock()
	c.Next()
}

func (b *Backend) injectFailure(c *gin.Context) {
	b.mu.Lock()
	status := b.FailNext
	b.FailNext = 0
	b.mu.Unlock()
	if status != 0 {
		c.AbortWithStatus(status)
		return
	}
	c.Next()
}

func (b *Backend) listGroups(c *gin.Context) {
	b.mu.Lock()
	defer b.mu.Unlock()
	c.JSON(http.StatusOK, b.groups)
}

func (b *Backend) listWeeks(c *gin.Context) {
	groupID := models.ID(c.Query("group_id"))
	b.mu.Lock()
	defer b.mu.Unlock()
	out := []models.Week{}
	for _, w := range b.weeks {
		if w.GroupID == groupID {
			out = append(out, w)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (b *Backend) createWeek(c *gin.Context) {
	var p models.WeekPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, w := range b.weeks {
		if w.GroupID == p.GroupID && w.WeekNumber == p.WeekNumber {
			c.JSON(http.StatusConflict, gin.H{"error": "Semana " + strconv.Itoa(p.WeekNumber) + " já existe nesta turma"})
			return
		}
	}
	w := models.Week{
		ID:             models.ID(strconv.Itoa(b.nextID)),
		GroupID:        p.GroupID,
		WeekNumber:     p.WeekNumber,
		CurricularUnit: p.CurricularUnit,
		Activities:     p.Activities,
		Capabilities:   p.Capabilities,
		Knowledge:      p.Knowledge,
		Resources:      p.Resources,
		Completed:      p.Completed,
	}
	b.nextID++
	b.weeks = append(b.weeks, w)
	c.JSON(http.StatusCreated, w)
}

func (b *Backend) updateWeek(c *gin.Context) {
	id := models.ID(c.Param("id"))
	var p models.WeekPayload
	if err := c.ShouldBindJSON(&p); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Dados inválidos"})
		return
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, w := range b.weeks {
		if w.ID != id {
			continue
		}
		w.CurricularUnit = p.CurricularUnit
		w.Activities = p.Activities
		w.Capabilities = p.Capabilities
		w.Knowledge = p.Knowledge
		w.Resources = p.Resources
		w.Completed = p.Completed
		b.weeks[i] = w
		c.JSON(http.StatusOK, w)
		return
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Semana não encontrada"})
}

func (b *Backend) deleteWeek(c *gin.Context) {
	id := models.ID(c.Param("id"))
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, w := range b.weeks {
		if w.ID == id {
			b.weeks = append(b.weeks[:i], b.weeks[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "Semana não encontrada"})
}

func (b *Backend) exportJSON(c *gin.Context) {
	b.listWeeks(c)
}

func (b *Backend) exportPDF(c *gin.Context) {
	c.Data(http.StatusOK, "application/pdf", []byte("%PDF-1.4\n%stub\n"))
}
