package dynamodb

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/library-lending/pkg/models"
	"github.com/chris/library-lending/pkg/storage"
)

// Item positions in the create transaction, used to interpret cancellation reasons.
const (
	createBookItem = iota
	createLoanItem
	createRefItem
)

// CreateLoan atomically reserves copies of the book and creates the loan record.
// The reference number is claimed in a guard table within the same transaction.
func (s *Store) CreateLoan(ctx context.Context, loan *models.Loan) error {
	slog.Log(ctx, slog.LevelDebug, "creating loan", "loan_id", loan.Id, "ref_nbr", loan.RefNbr)

	loanAV, err := attributevalue.MarshalMap(toLoanRecord(loan))
	if err != nil {
		return fmt.Errorf("failed to marshal loan: %w", err)
	}
	refAV, err := attributevalue.MarshalMap(refRecord{RefNbr: loan.RefNbr, LoanID: loan.Id})
	if err != nil {
		return fmt.Errorf("failed to marshal reference number: %w", err)
	}
	nowAV, err := attributevalue.Marshal(loan.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}
	ledger, err := s.ledgerItem(loan, models.RESERVE, loan.Quantity, "Loan created", loan.CreatedAt)
	if err != nil {
		return err
	}

	input := &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			createBookItem: s.reserveItem(loan.BookId, loan.Quantity, nowAV),
			createLoanItem: {
				Put: &types.Put{
					TableName:           aws.String(s.LoansTableName),
					Item:                loanAV,
					ConditionExpression: aws.String("attribute_not_exists(id)"),
				},
			},
			createRefItem: {
				Put: &types.Put{
					TableName:           aws.String(s.RefsTableName),
					Item:                refAV,
					ConditionExpression: aws.String("attribute_not_exists(ref_nbr)"),
				},
			},
			createRefItem + 1: ledger,
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, input)
	if err != nil {
		if reasons, ok := cancellation(err); ok {
			switch {
			case failedCondition(reasons, createBookItem):
				if len(reasons[createBookItem].Item) == 0 {
					return fmt.Errorf("book with ID %s: %w", loan.BookId, storage.ErrNotFound)
				}
				return fmt.Errorf("book %s cannot lend %d copies: %w", loan.BookId, loan.Quantity, storage.ErrInsufficientCopies)
			case failedCondition(reasons, createRefItem):
				return fmt.Errorf("%s: %w", loan.RefNbr, storage.ErrReferenceCollision)
			case failedCondition(reasons, createLoanItem):
				return fmt.Errorf("loan with ID %s: %w", loan.Id, storage.ErrAlreadyExists)
			}
		}
		return fmt.Errorf("failed to execute transaction: %w", err)
	}

	return nil
}
