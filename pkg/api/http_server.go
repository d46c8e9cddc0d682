package api

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"

	"custdb/pkg/common"
	"custdb/pkg/core"
	"custdb/pkg/query"
)

// Server exposes the engine over HTTP. The core is single-threaded by
// design, so every handler goes through one RWMutex: queries share a
// read lock, sorting takes the write lock.
type Server struct {
	engine *core.Engine
	limit  int
	mu     sync.RWMutex
}

func NewServer(engine *core.Engine, limit int) *Server {
	return &Server{engine: engine, limit: limit}
}

func (s *Server) Router() *gin.Engine {
	r := gin.Default()
	r.GET("/api/records", s.handleRecords)
	r.POST("/api/sort", s.handleSort)
	r.GET("/api/search", s.handleSearch)
	r.GET("/api/range", s.handleRange)
	r.GET("/api/tree", s.handleTree)
	r.GET("/api/statistics", s.handleStatistics)
	r.GET("/api/stats", s.handleStats)
	return r
}

func (s *Server) Run(addr string) error {
	log.Printf("[API] Server listening on %s...", addr)
	return s.Router().Run(addr)
}

type recordView struct {
	CustomerID       string `json:"customer_id"`
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Company          string `json:"company"`
	City             string `json:"city"`
	Country          string `json:"country"`
	Email            string `json:"email"`
	SubscriptionDate string `json:"subscription_date"`
	Website          string `json:"website"`
}

func viewOf(r common.Record) recordView {
	return recordView{
		CustomerID:       r.CustomerID,
		FirstName:        r.FirstName,
		LastName:         r.LastName,
		Company:          r.Company,
		City:             r.City,
		Country:          r.Country,
		Email:            r.Email,
		SubscriptionDate: r.Subscribed.String(),
		Website:          r.Website,
	}
}

func views(records []common.Record) []recordView {
	out := make([]recordView, 0, len(records))
	for _, r := range records {
		out = append(out, viewOf(r))
	}
	return out
}

func (s *Server) handleRecords(c *gin.Context) {
	limit := s.limit
	switch raw := c.Query("limit"); raw {
	case "":
	case "all":
		limit = -1
	default:
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a non-negative integer or 'all'"})
			return
		}
		limit = n
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	records := s.engine.First(limit)
	c.JSON(http.StatusOK, gin.H{
		"total":      s.engine.Len(),
		"active_key": s.engine.ActiveKey().String(),
		"records":    views(records),
	})
}

func (s *Server) handleSort(c *gin.Context) {
	var body struct {
		Key string `json:"key"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	kind, ok := common.ParseSortKey(body.Key)
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown sort key: use id, first_name, subscription_date or country"})
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.engine.SortBy(kind); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "sorted", "active_key": kind.String()})
}

func (s *Server) handleSearch(c *gin.Context) {
	q := c.Query("q")
	if q == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing q parameter, e.g. q=country = France"})
		return
	}
	expr, err := query.Parse(q)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var result *core.Comparison
	if expr.Exact() {
		result, err = s.engine.Search(expr.Field, expr.Value)
	} else {
		result, err = s.engine.SearchPred(expr.Match)
	}
	if err != nil {
		s.writeSearchError(c, err)
		return
	}
	s.writeComparison(c, result)
}

func (s *Server) handleRange(c *gin.Context) {
	from := common.ParseDate(c.Query("from"))
	to := common.ParseDate(c.Query("to"))
	if !from.Valid || !to.Valid {
		c.JSON(http.StatusBadRequest, gin.H{"error": "from and to must be dates in YYYY-MM-DD form"})
		return
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	result, err := s.engine.SearchRange(from, to)
	if err != nil {
		s.writeSearchError(c, err)
		return
	}
	s.writeComparison(c, result)
}

func (s *Server) handleTree(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	levels, err := s.engine.Levels()
	if err != nil {
		s.writeSearchError(c, err)
		return
	}
	nodes := make([]gin.H, 0, len(levels))
	for _, entry := range levels {
		nodes = append(nodes, gin.H{
			"depth":       entry.Depth,
			"key":         entry.Key.String(),
			"bucket_size": entry.BucketSize,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"active_key": s.engine.ActiveKey().String(),
		"nodes":      nodes,
	})
}

func (s *Server) handleStatistics(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := s.engine.Statistics()
	counts := make([]gin.H, 0, len(stats.Counts))
	for _, cc := range stats.Counts {
		counts = append(counts, gin.H{"country": cc.Country, "count": cc.Count})
	}
	c.JSON(http.StatusOK, gin.H{
		"records":        stats.Records,
		"countries":      stats.Countries,
		"country_counts": counts,
		"earliest_date":  stats.Earliest.String(),
		"latest_date":    stats.Latest.String(),
	})
}

func (s *Server) handleStats(c *gin.Context) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	c.JSON(http.StatusOK, s.engine.Stats())
}

func (s *Server) writeComparison(c *gin.Context, result *core.Comparison) {
	c.JSON(http.StatusOK, gin.H{
		"count":   len(result.Records),
		"records": views(result.Records),
		"latency_ns": gin.H{
			"avl":   result.TreeDuration.Nanoseconds(),
			"stack": result.StackDuration.Nanoseconds(),
			"queue": result.QueueDuration.Nanoseconds(),
		},
	})
}

func (s *Server) writeSearchError(c *gin.Context, err error) {
	if errors.Is(err, common.ErrNoIndex) {
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
