package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
)

// SaveLoan replaces the loan record if it is still at prev.Version and, when release is positive,
// credits the copies back to the book in the same transaction.
func (s *Store) SaveLoan(ctx context.Context, prev, next *models.Loan, release int64) error {
	loanAV, err := attributevalue.MarshalMap(toLoanRecord(next))
	if err != nil {
		return fmt.Errorf("failed to marshal loan: %w", err)
	}

	items := []types.TransactWriteItem{
		{
			Put: &types.Put{
				TableName:           aws.String(s.LoansTableName),
				Item:                loanAV,
				ConditionExpression: aws.String("attribute_exists(id) AND version = :version"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":version": number(prev.Version),
				},
				ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
			},
		},
	}

	if release > 0 {
		releaseItems, err := s.releaseItems(ctx, next, release, "Loan "+string(next.Status))
		if err != nil {
			return err
		}
		items = append(items, releaseItems...)
	}

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return loanWriteError(err, prev.Id)
	}

	return nil
}

// releaseItems builds the book credit and its ledger entry, or nothing when the book has no room.
func (s *Store) releaseItems(ctx context.Context, loan *models.Loan, release int64, description string) ([]types.TransactWriteItem, error) {
	nowAV, err := attributevalue.Marshal(loan.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	bookItem, credited, err := s.releaseItem(ctx, loan.BookId, release, nowAV)
	if err != nil {
		return nil, err
	}
	if bookItem == nil {
		return nil, nil
	}

	ledger, err := s.ledgerItem(loan, models.RELEASE, credited, description, loan.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return []types.TransactWriteItem{*bookItem, ledger}, nil
}

// loanWriteError maps a failed loan transaction whose first item is the conditional loan write.
// Any other failed condition means the book moved under us, which is retryable the same way.
func loanWriteError(err error, loanID string) error {
	reasons, ok := cancellation(err)
	if !ok {
		return fmt.Errorf("failed to execute transaction: %w", err)
	}

	if failedCondition(reasons, 0) {
		if len(reasons[0].Item) == 0 {
			return fmt.Errorf("loan with ID %s: %w", loanID, storage.ErrNotFound)
		}
		return fmt.Errorf("loan with ID %s: %w", loanID, storage.ErrLoanModified)
	}
	for i := range reasons {
		if failedCondition(reasons, i) {
			return fmt.Errorf("book of loan %s changed during the write: %w", loanID, storage.ErrLoanModified)
		}
	}
	return fmt.Errorf("failed to execute transaction: %w", err)
}
