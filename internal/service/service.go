package service

import (
	"context"
	"time"

	"receipt_keeper/internal/integrations/docai"
	"receipt_keeper/internal/models"
	"receipt_keeper/internal/repository"
)

// RegisterParams is the input for account creation.
type RegisterParams struct {
	Username string
	Email    string
	Password string
	Name     string
	Surname  string
}

// ProfileUpdate carries the editable profile fields; empty values keep the
// stored ones.
type ProfileUpdate struct {
	Name     string
	Surname  string
	Bio      string
	Location string
	Photo    string
}

// ReceiptParams is the caller-settable part of a receipt. The total is never
// accepted from the caller.
type ReceiptParams struct {
	Date          time.Time // zero means "now"
	Items         []models.Item
	Note          string
	PaymentMethod string
	Tags          []string
	Store         string
}

// CategoryCascade reports the outcome of a category deletion.
type CategoryCascade struct {
	Categories      []string `json:"categories"`
	ReceiptsUpdated int      `json:"receiptsUpdated"`
}

type Authorization interface {
	Register(ctx context.Context, p RegisterParams) (models.User, string, error)
	Login(ctx context.Context, username, password string) (models.User, string, error)
	ParseToken(accessToken string) (int, error)
}

// Profile exposes account-level operations on the authenticated user.
type Profile interface {
	Get(ctx context.Context, userID int) (models.User, error)
	Update(ctx context.Context, userID int, p ProfileUpdate) (models.User, error)
	ChangePassword(ctx context.Context, userID int, current, newPassword string) error
	// DeleteAccount removes the user and all owned receipts after
	// verifying the password.
	DeleteAccount(ctx context.Context, userID int, password string) error
}

// Categories manages a user's category list and favourites subset.
type Categories interface {
	Create(ctx context.Context, userID int, name string) ([]string, error)
	Delete(ctx context.Context, userID int, name string) (CategoryCascade, error)
	SetFavourite(ctx context.Context, userID int, name string, add bool) ([]string, error)
}

// Statistics produces the spending summary.
type Statistics interface {
	Summary(ctx context.Context, userID int) (models.Stats, error)
}

// Receipts is the receipt CRUD surface with ownership checks.
type Receipts interface {
	Create(ctx context.Context, userID int, p ReceiptParams) (models.Receipt, error)
	List(ctx context.Context, userID int) ([]models.Receipt, error)
	GetByID(ctx context.Context, userID int, id string) (models.Receipt, error)
	Update(ctx context.Context, userID int, id string, p ReceiptParams) (models.Receipt, error)
	Delete(ctx context.Context, userID int, id string) error
	CategoryItems(ctx context.Context, userID int, category string) ([]models.CategoryItem, error)
}

// Extraction turns an uploaded document into a draft receipt.
type Extraction interface {
	ProcessDocument(ctx context.Context, content []byte, mimeType string) (models.Draft, error)
}

// DocumentProcessor is the external extraction collaborator.
type DocumentProcessor interface {
	Process(ctx context.Context, content []byte, mimeType string) ([]docai.Entity, error)
}

// AuthConfig carries token issuing parameters from configuration.
type AuthConfig struct {
	SigningKey string
	TokenTTL   time.Duration
}

// Service aggregates all sub-services behind one injection point.
type Service struct {
	Authorization
	Profile
	Categories
	Statistics
	Receipts
	Extraction
}

// NewService wires the repository layer and external collaborators into
// concrete services.
func NewService(repos *repository.Repository, auth AuthConfig, processor DocumentProcessor) *Service {
	return &Service{
		Authorization: NewAuthService(repos.Users, auth),
		Profile:       NewProfileService(repos.Users, repos.Receipts),
		Categories:    NewCategoryService(repos.Users, repos.Receipts),
		Statistics:    NewStatsService(repos.Receipts),
		Receipts:      NewReceiptService(repos.Receipts),
		Extraction:    NewExtractionService(processor),
	}
}
