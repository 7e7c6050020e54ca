package mockapi

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// DefaultCollections are the record groups the travel app uses.
var DefaultCollections = []string{"users", "destinations"}

type Server struct {
	store       RecordStore
	collections map[string]struct{}
}

// NewRouter builds the echo instance serving the flat resource API:
//
//	GET    /:collection            equality params, _sort/_order
//	GET    /:collection/:id
//	POST   /:collection            store assigns the id
//	PATCH  /:collection/:id        shallow merge
//
// There is no authentication; this is a development transport.
func NewRouter(store RecordStore, allowOrigins []string, collections ...string) *echo.Echo {
	if len(collections) == 0 {
		collections = DefaultCollections
	}
	server := &Server{
		store:       store,
		collections: make(map[string]struct{}, len(collections)),
	}
	for _, name := range collections {
		server.collections[name] = struct{}{}
	}

	e := echo.New()
	e.HideBanner = true

	allowCredentials := true
	for _, origin := range allowOrigins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	registerLogging(e)

	e.Use(middleware.Recover())
	e.Use(middleware.Secure())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodOptions},
		AllowHeaders: []string{
			echo.HeaderContentType,
			echo.HeaderAccept,
			echo.HeaderOrigin,
		},
		AllowCredentials: allowCredentials,
	}))

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"ok": true})
	})

	e.GET("/:collection", server.list)
	e.GET("/:collection/:id", server.get)
	e.POST("/:collection", server.insert)
	e.PATCH("/:collection/:id", server.patch)

	return e
}

func (s *Server) list(c echo.Context) error {
	collection, ok := s.allowed(c.Param("collection"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorBody("unknown collection"))
	}

	docs, err := s.store.List(c.Request().Context(), collection)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("store failure"))
	}

	var sortField, sortOrder string
	for key, values := range c.QueryParams() {
		if len(values) == 0 {
			continue
		}
		value := values[0]
		switch key {
		case "_sort":
			sortField = value
		case "_order":
			sortOrder = value
		default:
			docs = filterEqual(docs, key, value)
		}
	}

	if sortField != "" {
		sortRecords(docs, sortField, !strings.EqualFold(sortOrder, "desc"))
	}

	return c.JSON(http.StatusOK, docs)
}

func (s *Server) get(c echo.Context) error {
	collection, ok := s.allowed(c.Param("collection"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorBody("unknown collection"))
	}

	doc, found, err := s.store.Get(c.Request().Context(), collection, c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("store failure"))
	}
	if !found {
		return c.JSON(http.StatusNotFound, errorBody("record not found"))
	}
	return c.JSON(http.StatusOK, doc)
}

func (s *Server) insert(c echo.Context) error {
	collection, ok := s.allowed(c.Param("collection"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorBody("unknown collection"))
	}

	var doc Record
	if err := c.Bind(&doc); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	// Typed clients serialize an unset uuid as the all-zeros string;
	// both spellings of "no id" get a fresh one.
	id := strings.TrimSpace(stringify(doc["id"]))
	if id == "" || id == uuid.Nil.String() {
		id = uuid.NewString()
	}

	stored, err := s.store.Insert(c.Request().Context(), collection, id, doc)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("store failure"))
	}
	return c.JSON(http.StatusCreated, stored)
}

func (s *Server) patch(c echo.Context) error {
	collection, ok := s.allowed(c.Param("collection"))
	if !ok {
		return c.JSON(http.StatusNotFound, errorBody("unknown collection"))
	}

	var partial Record
	if err := c.Bind(&partial); err != nil {
		return c.JSON(http.StatusBadRequest, errorBody("invalid request body"))
	}

	merged, found, err := s.store.Patch(c.Request().Context(), collection, c.Param("id"), partial)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, errorBody("store failure"))
	}
	if !found {
		return c.JSON(http.StatusNotFound, errorBody("record not found"))
	}
	return c.JSON(http.StatusOK, merged)
}

func errorBody(message string) echo.Map {
	return echo.Map{"error": message}
}

func (s *Server) allowed(name string) (string, bool) {
	_, ok := s.collections[name]
	return name, ok
}

func filterEqual(docs []Record, field, value string) []Record {
	out := docs[:0]
	for _, doc := range docs {
		if matchEqual(doc, field, value) {
			out = append(out, doc)
		}
	}
	return out
}
