package handler

import (
	"net/http"

	"github.com/pkordes/wayfarer/internal/geo"
)

// RouteDistanceRequest is the body of POST /geo/route-distance.
type RouteDistanceRequest struct {
	Points []geo.Point `json:"points"`
}

// RouteDistanceResponse reports the length of a route in kilometres.
type RouteDistanceResponse struct {
	DistanceKm float64 `json:"distanceKm"`
	Points     int     `json:"points"`
}

// RouteDistance handles POST /geo/route-distance. Fewer than two points is a
// zero-length route.
func (s *Server) RouteDistance(w http.ResponseWriter, r *http.Request) {
	var req RouteDistanceRequest
	if err := decodeBody(r, &req); err != nil {
		writeBodyError(w, err)
		return
	}
	for _, p := range req.Points {
		if !p.Valid() {
			writeJSON(w, http.StatusUnprocessableEntity, requestBody("coordinates out of range"))
			return
		}
	}
	writeJSON(w, http.StatusOK, RouteDistanceResponse{
		DistanceKm: geo.TotalRouteDistance(req.Points),
		Points:     len(req.Points),
	})
}
