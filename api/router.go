// Package api serves instance generation over HTTP.
package api

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"git.solver4all.com/azaryc2s/cvrp"
	"git.solver4all.com/azaryc2s/cvrp/metrics"
)

// GenerateQuery is the query string of the generation endpoints. Binding only
// parses; a missing or zero parameter reaches Params.Validate and comes back
// as a RangeError.
type GenerateQuery struct {
	N      int   `form:"n"`
	Root   int   `form:"root"`
	Cust   int   `form:"cust"`
	Demand int   `form:"demand"`
	Route  int   `form:"route"`
	ID     int   `form:"id,default=1"`
	Seed   int64 `form:"seed,default=1"`
}

func (q GenerateQuery) Params() cvrp.Params {
	return cvrp.Params{
		N:            q.N,
		RootPos:      cvrp.DepotPlacement(q.Root),
		CustPos:      cvrp.CustomerPlacement(q.Cust),
		DemandType:   cvrp.DemandType(q.Demand),
		AvgRouteSize: cvrp.RouteSize(q.Route),
		InstanceID:   q.ID,
		Seed:         q.Seed,
	}
}

// DatasetResponse is the spatial dataset plus the derived fleet figures.
type DatasetResponse struct {
	*cvrp.Dataset
	Capacity int `json:"capacity"`
	Vehicles int `json:"vehicles"`
}

type handler struct {
	gen     *cvrp.Generator
	metrics *metrics.Registry
	logger  *slog.Logger
	maxN    int
}

// NewRouter wires all routes. reg may be nil, in which case /metrics is not
// served and nothing is recorded.
func NewRouter(gen *cvrp.Generator, reg *metrics.Registry, logger *slog.Logger, maxN int) *gin.Engine {
	h := &handler{gen: gen, metrics: reg, logger: logger, maxN: maxN}

	r := gin.New()
	r.Use(gin.Recovery(), h.logRequests)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/v1")
	v1.GET("/options", func(c *gin.Context) {
		c.JSON(http.StatusOK, cvrp.Options())
	})
	v1.GET("/instance", h.instance)
	v1.GET("/dataset", h.dataset)

	if reg != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(reg.Gatherer(), promhttp.HandlerOpts{})))
	}
	return r
}

func (h *handler) logRequests(c *gin.Context) {
	start := time.Now()
	c.Next()
	h.logger.Info("request",
		"method", c.Request.Method,
		"path", c.Request.URL.Path,
		"status", c.Writer.Status(),
		"duration", time.Since(start),
	)
}

func (h *handler) generate(c *gin.Context) (*cvrp.Result, bool) {
	var q GenerateQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}
	if h.maxN > 0 && q.N > h.maxN {
		err := &cvrp.RangeError{Param: "number of customers", Value: q.N, Min: 1, Max: h.maxN}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return nil, false
	}

	start := time.Now()
	res, err := h.gen.Run(q.Params())
	if h.metrics != nil {
		var st cvrp.Stats
		if res != nil {
			st = res.Stats
		}
		h.metrics.RecordGeneration(st, time.Since(start), err)
	}
	if err != nil {
		status := statusFor(err)
		if status == http.StatusInternalServerError {
			h.logger.Error("generation failed", "error", err)
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return nil, false
	}
	return res, true
}

func statusFor(err error) int {
	var rerr *cvrp.RangeError
	var cerr *cvrp.ConstraintError
	switch {
	case errors.As(err, &rerr):
		return http.StatusBadRequest
	case errors.As(err, &cerr):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func (h *handler) instance(c *gin.Context) {
	res, ok := h.generate(c)
	if !ok {
		return
	}
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", res.Instance.Name+".vrp"))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", res.Instance.MarshalVRP())
}

func (h *handler) dataset(c *gin.Context) {
	res, ok := h.generate(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, DatasetResponse{
		Dataset:  res.Dataset,
		Capacity: res.Instance.Capacity,
		Vehicles: res.Stats.Vehicles,
	})
}
