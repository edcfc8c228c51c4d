package api

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/termdock/termdock/internal/model"
	"github.com/termdock/termdock/internal/service"
	"github.com/termdock/termdock/internal/validate"
	"github.com/termdock/termdock/internal/version"
)

// Handler contains all HTTP handlers for the API.
//
// Single-user, single-session: the server fronts one config directory on
// the local machine, and every connected client (browser tab, tray app)
// sees the same document. All state lives in the Manager.
type Handler struct {
	manager  *service.Manager
	launch   *service.LaunchService
	export   *service.ExportService
	doctor   *service.DoctorService
	updates  *service.UpdateService
	onChange func() // Called after any write, nil when no hub is wired
}

// NewHandler creates a new handler with the given dependencies.
func NewHandler(manager *service.Manager, launch *service.LaunchService, export *service.ExportService, updates *service.UpdateService) *Handler {
	return &Handler{
		manager: manager,
		launch:  launch,
		export:  export,
		doctor:  service.NewDoctorService(),
		updates: updates,
	}
}

// SetOnChange sets a callback invoked after every successful write.
// Used by Server to push change notifications over WebSocket.
func (h *Handler) SetOnChange(fn func()) {
	h.onChange = fn
}

func (h *Handler) changed() {
	if h.onChange != nil {
		h.onChange()
	}
}

// RegisterRoutes sets up all API routes on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	// Whole-document routes
	mux.HandleFunc("GET /api/v1/config", h.GetConfig)
	mux.HandleFunc("PUT /api/v1/config", h.PutConfig)

	// Directory routes
	mux.HandleFunc("GET /api/v1/directories", h.ListDirectories)
	mux.HandleFunc("POST /api/v1/directories", h.CreateDirectory)
	mux.HandleFunc("PUT /api/v1/directories/{id}", h.UpdateDirectory)
	mux.HandleFunc("DELETE /api/v1/directories/{id}", h.DeleteDirectory)
	mux.HandleFunc("POST /api/v1/directories/{id}/favorite", h.ToggleFavorite)
	mux.HandleFunc("GET /api/v1/recent", h.ListRecent)

	// Terminal routes
	mux.HandleFunc("GET /api/v1/terminals", h.ListTerminals)
	mux.HandleFunc("POST /api/v1/terminals", h.CreateTerminal)
	mux.HandleFunc("PATCH /api/v1/terminals/{id}", h.PatchTerminal)
	mux.HandleFunc("DELETE /api/v1/terminals/{id}", h.DeleteTerminal)

	// Group routes
	mux.HandleFunc("GET /api/v1/groups", h.ListGroups)
	mux.HandleFunc("POST /api/v1/groups", h.CreateGroup)
	mux.HandleFunc("PATCH /api/v1/groups/{id}/default", h.SetDefaultGroup)
	mux.HandleFunc("DELETE /api/v1/groups/{id}", h.DeleteGroup)

	// Settings routes
	mux.HandleFunc("GET /api/v1/settings", h.GetSettings)
	mux.HandleFunc("PUT /api/v1/settings", h.PutSettings)

	// Actions
	mux.HandleFunc("POST /api/v1/launch", h.Launch)
	mux.HandleFunc("GET /api/v1/doctor", h.Doctor)
	mux.HandleFunc("POST /api/v1/export", h.Export)
	mux.HandleFunc("POST /api/v1/import", h.Import)
	mux.HandleFunc("GET /api/v1/version", h.Version)
	mux.HandleFunc("GET /api/v1/update", h.UpdateCheck)
}

// --- Document Handlers ---

// GetConfig returns the full canonical document.
func (h *Handler) GetConfig(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.manager.Document())
}

// PutConfig replaces the whole document. The payload is validated for
// structure, then migrated to canonical shape before being persisted.
func (h *Handler) PutConfig(w http.ResponseWriter, r *http.Request) {
	var raw map[string]any
	if err := json.NewDecoder(r.Body).Decode(&raw); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	if result := validate.Document(raw, "config"); !result.Valid {
		BadRequest(w, result.Error)
		return
	}

	doc, err := h.manager.ReplaceDocument(raw)
	if err != nil {
		Error(w, err)
		return
	}

	h.changed()
	JSON(w, http.StatusOK, doc)
}

// --- Directory Handlers ---

// ListDirectories returns all directory shortcuts, optionally filtered
// by group.
func (h *Handler) ListDirectories(w http.ResponseWriter, r *http.Request) {
	doc := h.manager.Document()

	group := r.URL.Query().Get("group")
	dirs := doc.Directories
	if group != "" {
		filtered := make([]model.Directory, 0, len(dirs))
		for _, d := range dirs {
			if d.Group == group {
				filtered = append(filtered, d)
			}
		}
		dirs = filtered
	}

	JSON(w, http.StatusOK, map[string]any{
		"directories": dirs,
		"favorites":   doc.Favorites,
	})
}

// CreateDirectory adds a directory shortcut. The id is assigned by the
// server, so only the path is required here.
func (h *Handler) CreateDirectory(w http.ResponseWriter, r *http.Request) {
	body, raw, ok := decodeBody(w, r)
	if !ok {
		return
	}
	if result := validate.String(raw["path"], "path"); !result.Valid {
		BadRequest(w, result.Error)
		return
	}

	var dir model.Directory
	if err := json.Unmarshal(body, &dir); err != nil {
		BadRequest(w, "malformed directory")
		return
	}

	created, err := h.manager.AddDirectory(dir)
	if err != nil {
		Error(w, err)
		return
	}

	h.changed()
	JSON(w, http.StatusCreated, created)
}

// UpdateDirectory replaces an existing directory shortcut.
func (h *Handler) UpdateDirectory(w http.ResponseWriter, r *http.Request) {
	body, raw, ok := decodeBody(w, r)
	if !ok {
		return
	}
	raw["id"] = r.PathValue("id")
	if result := validate.Directory(raw, "directory"); !result.Valid {
		BadRequest(w, result.Error)
		return
	}

	var dir model.Directory
	if err := json.Unmarshal(body, &dir); err != nil {
		BadRequest(w, "malformed directory")
		return
	}
	dir.ID = r.PathValue("id")

	if err := h.manager.UpdateDirectory(dir); err != nil {
		Error(w, err)
		return
	}

	h.changed()
	JSON(w, http.StatusOK, h.manager.Document().DirectoryByID(dir.ID))
}

// DeleteDirectory removes a directory shortcut.
func (h *Handler) DeleteDirectory(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.DeleteDirectory(r.PathValue("id")); err != nil {
		Error(w, err)
		return
	}
	h.changed()
	w.WriteHeader(http.StatusNoContent)
}

// ToggleFavorite flips the favorite status of a directory.
func (h *Handler) ToggleFavorite(w http.ResponseWriter, r *http.Request) {
	favorite, err := h.manager.ToggleFavorite(r.PathValue("id"))
	if err != nil {
		Error(w, err)
		return
	}
	h.changed()
	JSON(w, http.StatusOK, map[string]bool{"favorite": favorite})
}

// ListRecent returns recently launched directories, newest first.
func (h *Handler) ListRecent(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"directories": h.manager.RecentDirectories()})
}

// --- Terminal Handlers ---

// ListTerminals returns all terminals. Hidden terminals are included;
// clients filter for presentation.
func (h *Handler) ListTerminals(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"terminals": h.manager.Document().Terminals})
}

// CreateTerminal adds a user-defined terminal.
func (h *Handler) CreateTerminal(w http.ResponseWriter, r *http.Request) {
	var term model.Terminal
	if err := json.NewDecoder(r.Body).Decode(&term); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	created, err := h.manager.AddTerminal(term)
	if err != nil {
		Error(w, err)
		return
	}

	h.changed()
	JSON(w, http.StatusCreated, created)
}

// PatchTerminalRequest is the JSON body for patching a terminal.
type PatchTerminalRequest struct {
	Hidden *bool `json:"hidden,omitempty"`
}

// PatchTerminal updates mutable terminal fields. Currently only hidden,
// which is also valid for built-ins.
func (h *Handler) PatchTerminal(w http.ResponseWriter, r *http.Request) {
	var req PatchTerminalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}
	if req.Hidden == nil {
		BadRequest(w, "no fields to update")
		return
	}

	if err := h.manager.SetTerminalHidden(r.PathValue("id"), *req.Hidden); err != nil {
		Error(w, err)
		return
	}

	h.changed()
	JSON(w, http.StatusOK, h.manager.Document().TerminalByID(r.PathValue("id")))
}

// DeleteTerminal removes a user-defined terminal. Built-ins return 403.
func (h *Handler) DeleteTerminal(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.DeleteTerminal(r.PathValue("id")); err != nil {
		Error(w, err)
		return
	}
	h.changed()
	w.WriteHeader(http.StatusNoContent)
}

// --- Group Handlers ---

// ListGroups returns all groups.
func (h *Handler) ListGroups(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]any{"groups": h.manager.Document().Groups})
}

// CreateGroupRequest is the JSON body for creating a group.
type CreateGroupRequest struct {
	Name string `json:"name"`
	Icon string `json:"icon,omitempty"`
}

// CreateGroup adds a new group.
func (h *Handler) CreateGroup(w http.ResponseWriter, r *http.Request) {
	var req CreateGroupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}

	group, err := h.manager.AddGroup(req.Name, req.Icon)
	if err != nil {
		Error(w, err)
		return
	}

	h.changed()
	JSON(w, http.StatusCreated, group)
}

// SetDefaultGroup makes the given group the default.
func (h *Handler) SetDefaultGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.SetDefaultGroup(r.PathValue("id")); err != nil {
		Error(w, err)
		return
	}
	h.changed()
	JSON(w, http.StatusOK, h.manager.Document().GroupByID(r.PathValue("id")))
}

// DeleteGroup removes a group. The default group returns 403; member
// directories move to the default group.
func (h *Handler) DeleteGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.manager.DeleteGroup(r.PathValue("id")); err != nil {
		Error(w, err)
		return
	}
	h.changed()
	w.WriteHeader(http.StatusNoContent)
}

// --- Settings Handlers ---

// GetSettings returns the application settings.
func (h *Handler) GetSettings(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.manager.Document().Settings)
}

// PutSettings applies a partial settings update. Present fields are
// validated and overlaid on the current settings; absent fields keep
// their values.
func (h *Handler) PutSettings(w http.ResponseWriter, r *http.Request) {
	body, raw, ok := decodeBody(w, r)
	if !ok {
		return
	}

	checks := map[string]func(any, string) validate.Result{
		"theme":          validate.String,
		"language":       validate.LocaleCode,
		"globalShortcut": validate.String,
		"recentLimit":    validate.NonNegativeInteger,
		"autoLaunch":     validate.Boolean,
		"startMinimized": validate.Boolean,
		"minimizeToTray": validate.Boolean,
		"showTabText":    validate.Boolean,
		"mcp":            validate.PlainObject,
	}
	for key, check := range checks {
		v, present := raw[key]
		if !present {
			continue
		}
		if result := check(v, key); !result.Valid {
			BadRequest(w, result.Error)
			return
		}
	}
	if mcp, ok := raw["mcp"].(map[string]any); ok {
		if v, present := mcp["enabled"]; present {
			if result := validate.Boolean(v, "mcp.enabled"); !result.Valid {
				BadRequest(w, result.Error)
				return
			}
		}
		if v, present := mcp["port"]; present {
			if result := validate.NonNegativeInteger(v, "mcp.port"); !result.Valid {
				BadRequest(w, result.Error)
				return
			}
		}
	}

	settings := h.manager.Document().Settings
	if err := json.Unmarshal(body, &settings); err != nil {
		BadRequest(w, "malformed settings")
		return
	}

	if err := h.manager.UpdateSettings(settings); err != nil {
		Error(w, err)
		return
	}

	h.changed()
	JSON(w, http.StatusOK, settings)
}

// --- Action Handlers ---

// LaunchRequest is the JSON body for launching a directory.
type LaunchRequest struct {
	ID string `json:"id"`
}

// Launch opens a directory in its configured terminal.
func (h *Handler) Launch(w http.ResponseWriter, r *http.Request) {
	var req LaunchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}
	if req.ID == "" {
		BadRequest(w, "id is required")
		return
	}

	if err := h.launch.Launch(req.ID); err != nil {
		Error(w, err)
		return
	}

	h.changed()
	JSON(w, http.StatusOK, map[string]string{"status": "launched"})
}

// Doctor runs invariant diagnostics over the current document.
func (h *Handler) Doctor(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, h.doctor.Check(h.manager.Document()))
}

// Export returns the document as a portable JSON export. Options come
// in the request body and control which sections are included.
func (h *Handler) Export(w http.ResponseWriter, r *http.Request) {
	raw, ok := decodeOptionalBody(w, r)
	if !ok {
		return
	}
	if result := validate.ExportOptions(raw, "options"); !result.Valid {
		BadRequest(w, result.Error)
		return
	}

	opts := service.ExportOptions{
		IncludeSettings:  boolOption(raw, "includeSettings"),
		IncludeFavorites: boolOption(raw, "includeFavorites"),
	}

	data, err := h.export.Export(opts)
	if err != nil {
		Error(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", "attachment; filename=termdock-export.json")
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// ImportRequest is the JSON body for importing a document.
type ImportRequest struct {
	Document json.RawMessage `json:"document"`
	Options  map[string]any  `json:"options,omitempty"`
}

// Import applies an exported document.
func (h *Handler) Import(w http.ResponseWriter, r *http.Request) {
	var req ImportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		BadRequest(w, "invalid JSON body")
		return
	}
	if len(req.Document) == 0 {
		BadRequest(w, "document is required")
		return
	}
	if result := validate.ImportOptions(req.Options, "options"); !result.Valid {
		BadRequest(w, result.Error)
		return
	}

	opts := service.ImportOptions{
		Merge:           boolOption(req.Options, "merge"),
		ReplaceSettings: boolOption(req.Options, "replaceSettings"),
	}

	doc, err := h.export.Import(req.Document, opts)
	if err != nil {
		Error(w, err)
		return
	}

	h.changed()
	JSON(w, http.StatusOK, doc)
}

// Version returns the running build's version.
func (h *Handler) Version(w http.ResponseWriter, r *http.Request) {
	JSON(w, http.StatusOK, map[string]string{"version": version.Version})
}

// UpdateCheck queries the release endpoint for a newer version.
func (h *Handler) UpdateCheck(w http.ResponseWriter, r *http.Request) {
	check, err := h.updates.Check(r.Context())
	if err != nil {
		Error(w, err)
		return
	}
	JSON(w, http.StatusOK, check)
}

// --- helpers ---

// decodeBody reads the request body once and returns both the raw bytes
// (for typed decoding) and the generic map (for validation).
func decodeBody(w http.ResponseWriter, r *http.Request) ([]byte, map[string]any, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		BadRequest(w, "failed to read body")
		return nil, nil, false
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		BadRequest(w, "invalid JSON body")
		return nil, nil, false
	}
	return body, raw, true
}

// decodeOptionalBody is decodeBody for endpoints whose body may be empty.
func decodeOptionalBody(w http.ResponseWriter, r *http.Request) (map[string]any, bool) {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		BadRequest(w, "failed to read body")
		return nil, false
	}
	if len(body) == 0 {
		return nil, true
	}
	var raw map[string]any
	if err := json.Unmarshal(body, &raw); err != nil {
		BadRequest(w, "invalid JSON body")
		return nil, false
	}
	return raw, true
}

func boolOption(raw map[string]any, key string) bool {
	v, _ := raw[key].(bool)
	return v
}
