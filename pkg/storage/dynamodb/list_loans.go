package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/library-lending/pkg/models"
)

// ListLoansByBorrower retrieves every loan of a borrower through the borrower GSI.
func (s *Store) ListLoansByBorrower(ctx context.Context, borrowerID string) ([]models.Loan, error) {
	loans, err := s.queryLoans(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.LoansTableName),
		IndexName:              aws.String(borrowerIDIndex),
		KeyConditionExpression: aws.String("borrower_id = :borrowerID"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":borrowerID": &types.AttributeValueMemberS{Value: borrowerID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query for loans by borrower ID: %w", err)
	}
	return loans, nil
}

// ListLoansByStatus retrieves every loan in the given status through the status GSI.
func (s *Store) ListLoansByStatus(ctx context.Context, status models.LoanStatus) ([]models.Loan, error) {
	loans, err := s.queryLoans(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.LoansTableName),
		IndexName:              aws.String(statusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query for loans by status: %w", err)
	}
	return loans, nil
}

// queryLoans follows LastEvaluatedKey until the query is exhausted.
func (s *Store) queryLoans(ctx context.Context, input *dynamodb.QueryInput) ([]models.Loan, error) {
	var records []loanRecord
	for {
		result, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, err
		}

		var page []loanRecord
		if err := attributevalue.UnmarshalListOfMaps(result.Items, &page); err != nil {
			return nil, fmt.Errorf("failed to unmarshal loans: %w", err)
		}
		records = append(records, page...)

		if len(result.LastEvaluatedKey) == 0 {
			break
		}
		input.ExclusiveStartKey = result.LastEvaluatedKey
	}

	return toLoans(records)
}
