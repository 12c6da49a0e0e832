package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
	"github.com/google/uuid"
)

// CreateBorrower creates a new borrower record in DynamoDB.
func (s *Store) CreateBorrower(ctx context.Context, borrower *models.Borrower) (*models.Borrower, error) {
	if borrower.Id == "" {
		borrower.Id = uuid.New().String()
	}
	borrower.CreatedAt = time.Now()

	borrowerAV, err := attributevalue.MarshalMap(borrower)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal borrower: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.BorrowersTableName),
		Item:                borrowerAV,
		ConditionExpression: aws.String("attribute_not_exists(id)"), // Prevent overwriting existing borrowers.
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return nil, fmt.Errorf("borrower with ID %s: %w", borrower.Id, storage.ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create borrower in DynamoDB: %w", err)
	}

	return borrower, nil
}

// DeleteBorrower deletes a borrower record from DynamoDB.
func (s *Store) DeleteBorrower(ctx context.Context, borrowerID string) error {
	key, err := attributevalue.MarshalMap(map[string]string{"id": borrowerID})
	if err != nil {
		return fmt.Errorf("failed to marshal borrower ID for deletion: %w", err)
	}

	_, err = s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.BorrowersTableName),
		Key:                 key,
		ConditionExpression: aws.String("attribute_exists(id)"),
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return fmt.Errorf("borrower with ID %s: %w", borrowerID, storage.ErrNotFound)
		}
		return fmt.Errorf("failed to delete borrower from DynamoDB: %w", err)
	}

	return nil
}

// GetBorrower retrieves a borrower from DynamoDB by ID.
func (s *Store) GetBorrower(ctx context.Context, borrowerID string) (*models.Borrower, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": borrowerID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal borrower ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.BorrowersTableName),
		Key:       key,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get borrower from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("borrower with ID %s: %w", borrowerID, storage.ErrNotFound)
	}

	var borrower models.Borrower
	if err := attributevalue.UnmarshalMap(result.Item, &borrower); err != nil {
		return nil, fmt.Errorf("failed to unmarshal borrower: %w", err)
	}

	return &borrower, nil
}

// ListBorrowers retrieves all borrowers from DynamoDB.
func (s *Store) ListBorrowers(ctx context.Context) ([]models.Borrower, error) {
	result, err := s.Client.Scan(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.BorrowersTableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan borrowers table: %w", err)
	}

	var borrowers []models.Borrower
	if err := attributevalue.UnmarshalListOfMaps(result.Items, &borrowers); err != nil {
		return nil, fmt.Errorf("failed to unmarshal borrowers: %w", err)
	}

	return borrowers, nil
}
