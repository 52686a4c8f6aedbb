package usecase

//go:generate mockgen -source=project_usecase.go -destination=../adapter/http/handlers/mocks/project_usecase_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"akc_operations/internal/domain/entities"
	"akc_operations/internal/domain/statemachine"
	"akc_operations/internal/identity"
	"akc_operations/internal/logging"
	"akc_operations/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// CreateProjectInput carries the fields accepted by CreateProject.
type CreateProjectInput struct {
	CustomerID     string
	ProjectName    string
	SiteLocation   entities.SiteLocation
	JobDescription string
}

// StatusChange is the outcome of a validated status update.
type StatusChange struct {
	ID        string
	OldStatus string
	NewStatus string
}

// IProjectUseCase exposes project lifecycle operations.
//
// Creation runs as a saga recorded in the ProjectIntents sheet:
//   - STARTED before any side effect
//   - FOLDERS_CREATED once the folder tree exists
//   - COMMITTED after the appended row has been read back
//
// Failures leave the intent FAILED or UNVERIFIED for CleanupProjectCreation.
type IProjectUseCase interface {
	CreateProject(ctx context.Context, in CreateProjectInput) (entities.Project, error)
	CleanupProjectCreation(ctx context.Context, intentID string) (entities.ProjectIntent, error)
	ListIntents(ctx context.Context, state string) ([]entities.ProjectIntent, error)
	GetActiveProjects(ctx context.Context) ([]entities.Project, error)
	GetProject(ctx context.Context, id string) (entities.Project, error)
	UpdateProjectStatus(ctx context.Context, id, status string) (StatusChange, error)
	GetModuleVisibility(ctx context.Context, id string) (entities.ModuleVisibility, error)
}

// ProjectDependencies groups the collaborators of ProjectUseCase.
type ProjectDependencies struct {
	Projects  interfaces.IProjectRepository
	Customers interfaces.ICustomerRepository
	Intents   interfaces.IProjectIntentRepository
	IDs       interfaces.IIDGenerator
	Folders   interfaces.IFolderService
	Verifier  interfaces.IVerifier
	Activity  IActivityLogger
	Machine   *statemachine.Machine
}

type ProjectSettings struct {
	ParentFolderID string
	// ShareDomain, when set, is granted access to every new project folder.
	ShareDomain string
}

type ProjectUseCase struct {
	ProjectDependencies
	settings ProjectSettings
	now      func() time.Time
	newID    func() string
}

var _ IProjectUseCase = (*ProjectUseCase)(nil)

func NewProjectUseCase(deps ProjectDependencies, settings ProjectSettings) *ProjectUseCase {
	return &ProjectUseCase{
		ProjectDependencies: deps,
		settings:            settings,
		now:                 func() time.Time { return time.Now().UTC() },
		newID:               uuid.NewString,
	}
}

func (u *ProjectUseCase) CreateProject(ctx context.Context, in CreateProjectInput) (entities.Project, error) {
	in.CustomerID = strings.TrimSpace(in.CustomerID)
	in.ProjectName = strings.TrimSpace(in.ProjectName)
	if err := requireFields(field{"customerId", in.CustomerID}, field{"projectName", in.ProjectName}); err != nil {
		return entities.Project{}, err
	}
	logger := logging.Component(ctx, "project", "usecase")

	customer, err := u.Customers.GetByID(ctx, in.CustomerID)
	if err != nil {
		return entities.Project{}, external(serviceStorage, err)
	}
	if customer.CustomerID == "" {
		return entities.Project{}, ErrCustomerNotFound
	}

	status := entities.ProjectStatusPending
	if err := u.Machine.ValidateTransition(entities.EntityProject, "", string(status)); err != nil {
		return entities.Project{}, err
	}

	projectID, err := u.IDs.NextID(ctx, entities.EntityProject, "")
	if err != nil {
		return entities.Project{}, external(serviceStorage, err)
	}

	actor := identity.Actor(ctx)
	now := u.now()
	intent, err := u.Intents.Create(ctx, entities.ProjectIntent{
		IntentID:    u.newID(),
		ProjectID:   projectID,
		CustomerID:  in.CustomerID,
		ProjectName: in.ProjectName,
		State:       entities.IntentStarted,
		CreatedOn:   now,
		UpdatedOn:   now,
		CreatedBy:   actor,
	})
	if err != nil {
		return entities.Project{}, external(serviceStorage, err)
	}
	logger.Info().Str("intent_id", intent.IntentID).Str("project_id", projectID).Msg("project creation started")

	folders, err := u.Folders.CreateProjectFolders(ctx, u.settings.ParentFolderID, in.ProjectName)
	if err != nil {
		u.markIntent(ctx, &intent, entities.IntentFailed, err)
		return entities.Project{}, external(serviceFolders, err)
	}
	intent.Folders = folders
	if err := u.markIntent(ctx, &intent, entities.IntentFoldersCreated, nil); err != nil {
		u.compensate(ctx, &intent, err)
		return entities.Project{}, external(serviceStorage, err)
	}

	project := entities.Project{
		ProjectID:      projectID,
		CustomerID:     in.CustomerID,
		ProjectName:    in.ProjectName,
		Status:         status,
		Folders:        folders,
		JobID:          projectID,
		SiteLocation:   in.SiteLocation,
		JobDescription: strings.TrimSpace(in.JobDescription),
		CreatedOn:      now,
		CreatedBy:      actor,
		LastModified:   now,
		LastModifiedBy: actor,
	}
	created, err := u.Projects.Create(ctx, project)
	if err != nil {
		u.compensate(ctx, &intent, err)
		return entities.Project{}, external(serviceStorage, err)
	}

	err = u.Verifier.Wait(ctx, func(ctx context.Context) (bool, error) {
		p, err := u.Projects.GetByID(ctx, projectID)
		return p.ProjectID != "", err
	})
	if err != nil {
		u.markIntent(ctx, &intent, entities.IntentUnverified, err)
		logger.Error().Err(err).Str("intent_id", intent.IntentID).Str("project_id", projectID).Msg("project row not verified")
		return entities.Project{}, external(serviceStorage, err)
	}
	u.markIntent(ctx, &intent, entities.IntentCommitted, nil)

	if domain := strings.TrimSpace(u.settings.ShareDomain); domain != "" {
		for _, id := range folders.IDs() {
			if err := u.Folders.ShareWithDomain(ctx, id, domain); err != nil {
				logger.Warn().Err(err).Str("folder_id", id).Str("domain", domain).Msg("folder sharing failed")
			}
		}
	}

	u.Activity.Record(ctx, ActivityEvent{
		Action:      entities.ActionProjectCreated,
		ModuleType:  entities.EntityProject,
		ReferenceID: projectID,
		Status:      string(status),
		Details: map[string]any{
			"projectName": in.ProjectName,
			"customerId":  in.CustomerID,
			"folderId":    folders.Root,
			"intentId":    intent.IntentID,
		},
	})
	logger.Info().Str("project_id", projectID).Msg("project created")
	return created, nil
}

// CleanupProjectCreation settles an intent left behind by a failed creation.
// When the project row turns out to exist the intent is committed; otherwise
// its folders are deleted and the intent is compensated.
func (u *ProjectUseCase) CleanupProjectCreation(ctx context.Context, intentID string) (entities.ProjectIntent, error) {
	intentID = strings.TrimSpace(intentID)
	if err := requireFields(field{"intentId", intentID}); err != nil {
		return entities.ProjectIntent{}, err
	}

	intent, err := u.Intents.GetByID(ctx, intentID)
	if err != nil {
		return entities.ProjectIntent{}, external(serviceStorage, err)
	}
	if intent.IntentID == "" {
		return entities.ProjectIntent{}, ErrIntentNotFound
	}
	if intent.State.Settled() {
		return intent, nil
	}

	if intent.ProjectID != "" {
		p, err := u.Projects.GetByID(ctx, intent.ProjectID)
		if err != nil {
			return entities.ProjectIntent{}, external(serviceStorage, err)
		}
		if p.ProjectID != "" {
			if err := u.markIntent(ctx, &intent, entities.IntentCommitted, nil); err != nil {
				return entities.ProjectIntent{}, external(serviceStorage, err)
			}
			return intent, nil
		}
	}

	if err := u.deleteFolders(ctx, intent.Folders); err != nil {
		u.markIntent(ctx, &intent, entities.IntentFailed, err)
		return entities.ProjectIntent{}, external(serviceFolders, err)
	}
	if err := u.markIntent(ctx, &intent, entities.IntentCompensated, nil); err != nil {
		return entities.ProjectIntent{}, external(serviceStorage, err)
	}
	u.recordCompensation(ctx, intent)
	return intent, nil
}

func (u *ProjectUseCase) ListIntents(ctx context.Context, state string) ([]entities.ProjectIntent, error) {
	s := entities.IntentState(strings.ToUpper(strings.TrimSpace(state)))
	if s != "" && !s.Valid() {
		return nil, invalid("Invalid intent state: %s", state)
	}
	intents, err := u.Intents.ListByState(ctx, s)
	if err != nil {
		return nil, external(serviceStorage, err)
	}
	return intents, nil
}

// GetActiveProjects lists the projects that accept child records.
func (u *ProjectUseCase) GetActiveProjects(ctx context.Context) ([]entities.Project, error) {
	all, err := u.Projects.List(ctx)
	if err != nil {
		return nil, external(serviceStorage, err)
	}
	active := make([]entities.Project, 0, len(all))
	for _, p := range all {
		if statemachine.ModuleAccessAllowed(p.Status) {
			active = append(active, p)
		}
	}
	return active, nil
}

func (u *ProjectUseCase) GetProject(ctx context.Context, id string) (entities.Project, error) {
	return findProject(ctx, u.Projects, id)
}

func (u *ProjectUseCase) UpdateProjectStatus(ctx context.Context, id, status string) (StatusChange, error) {
	id = strings.TrimSpace(id)
	if err := requireFields(field{"projectId", id}, field{"status", status}); err != nil {
		return StatusChange{}, err
	}

	p, err := findProject(ctx, u.Projects, id)
	if err != nil {
		return StatusChange{}, err
	}
	oldStatus := statemachine.Normalize(string(p.Status))
	newStatus := statemachine.Normalize(status)
	if err := u.Machine.ValidateTransition(entities.EntityProject, oldStatus, newStatus); err != nil {
		return StatusChange{}, err
	}

	updated, err := u.Projects.UpdateStatus(ctx, id, entities.ProjectStatus(newStatus), identity.Actor(ctx), u.now())
	if err != nil {
		return StatusChange{}, external(serviceStorage, err)
	}
	if updated.ProjectID == "" {
		return StatusChange{}, ErrProjectNotFound
	}

	u.Activity.Record(ctx, ActivityEvent{
		Action:         entities.ActionProjectStatusChanged,
		ModuleType:     entities.EntityProject,
		ReferenceID:    id,
		Status:         newStatus,
		PreviousStatus: oldStatus,
		Details:        map[string]any{"oldStatus": oldStatus, "newStatus": newStatus},
	})
	return StatusChange{ID: id, OldStatus: oldStatus, NewStatus: newStatus}, nil
}

func (u *ProjectUseCase) GetModuleVisibility(ctx context.Context, id string) (entities.ModuleVisibility, error) {
	p, err := findProject(ctx, u.Projects, id)
	if err != nil {
		return entities.ModuleVisibility{}, err
	}
	return statemachine.ModuleVisibility(p.Status), nil
}

// markIntent persists the intent's new state. Failures are logged and
// returned; callers that can proceed without the bookkeeping ignore them.
func (u *ProjectUseCase) markIntent(ctx context.Context, intent *entities.ProjectIntent, state entities.IntentState, cause error) error {
	intent.State = state
	intent.UpdatedOn = u.now()
	intent.Error = ""
	if cause != nil {
		intent.Error = cause.Error()
	}
	if _, err := u.Intents.Update(ctx, *intent); err != nil {
		logging.Component(ctx, "project", "usecase").Error().Err(err).
			Str("intent_id", intent.IntentID).
			Str("state", string(state)).
			Msg("intent update failed")
		return err
	}
	return nil
}

// compensate removes the folders of a creation whose row was never written.
func (u *ProjectUseCase) compensate(ctx context.Context, intent *entities.ProjectIntent, cause error) {
	if err := u.deleteFolders(ctx, intent.Folders); err != nil {
		u.markIntent(ctx, intent, entities.IntentFailed, errors.Join(cause, err))
		return
	}
	u.markIntent(ctx, intent, entities.IntentCompensated, cause)
	u.recordCompensation(ctx, *intent)
}

func (u *ProjectUseCase) deleteFolders(ctx context.Context, folders entities.ProjectFolders) error {
	var errs []error
	for _, id := range folders.IDs() {
		err := u.Folders.DeleteFolder(ctx, id)
		if err != nil && !errors.Is(err, interfaces.ErrFolderNotFound) {
			errs = append(errs, fmt.Errorf("delete folder %s: %w", id, err))
		}
	}
	return errors.Join(errs...)
}

func (u *ProjectUseCase) recordCompensation(ctx context.Context, intent entities.ProjectIntent) {
	u.Activity.Record(ctx, ActivityEvent{
		Action:      entities.ActionProjectCreationCompensated,
		ModuleType:  entities.EntityProject,
		ReferenceID: intent.ProjectID,
		Details: map[string]any{
			"intentId":    intent.IntentID,
			"projectName": intent.ProjectName,
			"error":       intent.Error,
		},
	})
}

func findProject(ctx context.Context, repo interfaces.IProjectRepository, id string) (entities.Project, error) {
	id = strings.TrimSpace(id)
	if err := requireFields(field{"projectId", id}); err != nil {
		return entities.Project{}, err
	}
	p, err := repo.GetByID(ctx, id)
	if err != nil {
		return entities.Project{}, external(serviceStorage, err)
	}
	if p.ProjectID == "" {
		return entities.Project{}, ErrProjectNotFound
	}
	return p, nil
}
