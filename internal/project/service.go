package project

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/vectorforge/vectorforge/internal/db"
	"github.com/vectorforge/vectorforge/internal/document"
	"github.com/vectorforge/vectorforge/internal/render"
	"github.com/vectorforge/vectorforge/internal/typeid"
)

var (
	ErrNotFound        = errors.New("project not found")
	ErrForbidden       = errors.New("forbidden")
	ErrInvalidDocument = errors.New("invalid document")
)

// Notifier receives the rendered markup whenever a project document is
// saved. The preview hub implements it; a nil Notifier disables pushes.
type Notifier interface {
	BroadcastPreview(projectID, markup string)
}

type Service struct {
	queries  *db.Queries
	notifier Notifier
}

func NewService(queries *db.Queries) *Service {
	return &Service{queries: queries}
}

// SetNotifier wires the live-preview hub. Must be called before the
// service starts handling requests.
func (s *Service) SetNotifier(n Notifier) {
	s.notifier = n
}

type Project struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	OwnerID   string `json:"ownerId"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func (s *Service) Create(ctx context.Context, name, ownerID string) (*Project, error) {
	projectID := typeid.NewProjectID()

	dbProj, err := s.queries.CreateProject(ctx, db.CreateProjectParams{
		ID:      projectID,
		Name:    name,
		OwnerID: ownerID,
	})
	if err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}

	// Seed initial document snapshot
	docJSON, err := json.Marshal(document.NewSampleDocument())
	if err != nil {
		return nil, fmt.Errorf("marshal initial document: %w", err)
	}

	_, err = s.queries.CreateSnapshot(ctx, db.CreateSnapshotParams{
		ID:        typeid.NewSnapshotID(),
		ProjectID: projectID,
		Version:   1,
		Document:  docJSON,
	})
	if err != nil {
		return nil, fmt.Errorf("create initial snapshot: %w", err)
	}

	return dbProjectToProject(dbProj), nil
}

func (s *Service) Get(ctx context.Context, projectID, userID string) (*Project, error) {
	dbProj, err := s.getOwned(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	return dbProjectToProject(dbProj), nil
}

func (s *Service) List(ctx context.Context, userID string) ([]Project, error) {
	dbProjects, err := s.queries.ListProjectsForUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list projects: %w", err)
	}

	projects := make([]Project, len(dbProjects))
	for i, p := range dbProjects {
		projects[i] = *dbProjectToProject(p)
	}

	return projects, nil
}

func (s *Service) Delete(ctx context.Context, projectID, userID string) error {
	if _, err := s.getOwned(ctx, projectID, userID); err != nil {
		return err
	}
	return s.queries.DeleteProject(ctx, projectID)
}

// SaveDocument validates and stores a new document version for the
// project, then pushes the re-rendered markup to any live previews.
func (s *Service) SaveDocument(ctx context.Context, projectID, userID string, raw json.RawMessage) (int32, error) {
	if _, err := s.getOwned(ctx, projectID, userID); err != nil {
		return 0, err
	}

	doc, err := document.Parse(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s", ErrInvalidDocument, err)
	}

	version := int32(1)
	latest, err := s.queries.GetLatestSnapshot(ctx, projectID)
	switch {
	case err == nil:
		version = latest.Version + 1
	case errors.Is(err, pgx.ErrNoRows):
		// First snapshot for this project
	default:
		return 0, fmt.Errorf("get latest snapshot: %w", err)
	}

	_, err = s.queries.CreateSnapshot(ctx, db.CreateSnapshotParams{
		ID:        typeid.NewSnapshotID(),
		ProjectID: projectID,
		Version:   version,
		Document:  raw,
	})
	if err != nil {
		return 0, fmt.Errorf("create snapshot: %w", err)
	}

	if err := s.queries.TouchProject(ctx, projectID); err != nil {
		return 0, fmt.Errorf("touch project: %w", err)
	}

	if s.notifier != nil {
		if markup, renderErr := render.Document(doc); renderErr == nil {
			s.notifier.BroadcastPreview(projectID, markup)
		}
	}

	return version, nil
}

func (s *Service) GetLatestDocument(ctx context.Context, projectID, userID string) (json.RawMessage, error) {
	if _, err := s.getOwned(ctx, projectID, userID); err != nil {
		return nil, err
	}

	snap, err := s.queries.GetLatestSnapshot(ctx, projectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get snapshot: %w", err)
	}

	return snap.Document, nil
}

func (s *Service) getOwned(ctx context.Context, projectID, userID string) (db.Project, error) {
	dbProj, err := s.queries.GetProject(ctx, projectID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return db.Project{}, ErrNotFound
		}
		return db.Project{}, fmt.Errorf("get project: %w", err)
	}

	if dbProj.OwnerID != userID {
		return db.Project{}, ErrForbidden
	}

	return dbProj, nil
}

func dbProjectToProject(p db.Project) *Project {
	return &Project{
		ID:        p.ID,
		Name:      p.Name,
		OwnerID:   p.OwnerID,
		CreatedAt: p.CreatedAt.UTC().Format("2006-01-02T15:04:05Z"),
		UpdatedAt: p.UpdatedAt.UTC().Format("2006-01-02T15:04:05Z"),
	}
}
