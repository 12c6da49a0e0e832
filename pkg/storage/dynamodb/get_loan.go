package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
)

// GetLoan retrieves a loan from DynamoDB by its ID.
func (s *Store) GetLoan(ctx context.Context, loanID string) (*models.Loan, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"id": loanID})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal loan ID: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.LoansTableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get loan from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("loan with ID %s: %w", loanID, storage.ErrNotFound)
	}

	var record loanRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return nil, fmt.Errorf("failed to unmarshal loan: %w", err)
	}

	loan, err := record.toModel()
	if err != nil {
		return nil, err
	}
	return &loan, nil
}

// RefNumberExists reports whether the reference guard table already holds refNbr.
func (s *Store) RefNumberExists(ctx context.Context, refNbr string) (bool, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"ref_nbr": refNbr})
	if err != nil {
		return false, fmt.Errorf("failed to marshal reference number: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.RefsTableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return false, fmt.Errorf("failed to look up reference number: %w", err)
	}

	return result.Item != nil, nil
}
