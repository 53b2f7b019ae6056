package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPublicRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/period", handler.GetCurrentPeriod)
	mux.HandleFunc("GET /v1/players/{playerID}/profile", handler.GetPlayerProfile)
}

func registerModeratorRoutes(mux *http.ServeMux, handler *Handler, moderatorToken string) {
	mux.Handle("PUT /v1/period", RequireModerator(moderatorToken, http.HandlerFunc(handler.SetCurrentPeriod)))
	mux.Handle("POST /v1/players/{playerID}/stats", RequireModerator(moderatorToken, http.HandlerFunc(handler.RecordStat)))
	mux.Handle("DELETE /v1/players/{playerID}/stats", RequireModerator(moderatorToken, http.HandlerFunc(handler.RemoveStat)))
	mux.Handle("PUT /v1/players/{playerID}/position", RequireModerator(moderatorToken, http.HandlerFunc(handler.SetPlayerPosition)))
}
