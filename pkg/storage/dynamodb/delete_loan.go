package dynamodb

import (
	"context"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/library-lending/pkg/models"
)

// DeleteLoan removes the loan and its reference guard if the loan is still at loan.Version,
// crediting release copies back to the book in the same transaction.
func (s *Store) DeleteLoan(ctx context.Context, loan *models.Loan, release int64) error {
	items := []types.TransactWriteItem{
		{
			Delete: &types.Delete{
				TableName: aws.String(s.LoansTableName),
				Key: map[string]types.AttributeValue{
					"id": &types.AttributeValueMemberS{Value: loan.Id},
				},
				ConditionExpression: aws.String("attribute_exists(id) AND version = :version"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":version": number(loan.Version),
				},
				ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
			},
		},
		{
			Delete: &types.Delete{
				TableName: aws.String(s.RefsTableName),
				Key: map[string]types.AttributeValue{
					"ref_nbr": &types.AttributeValueMemberS{Value: loan.RefNbr},
				},
			},
		},
	}

	if release > 0 {
		deleted := *loan
		deleted.UpdatedAt = time.Now()
		releaseItems, err := s.releaseItems(ctx, &deleted, release, "Loan deleted")
		if err != nil {
			return err
		}
		items = append(items, releaseItems...)
	}

	_, err := s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{TransactItems: items})
	if err != nil {
		return loanWriteError(err, loan.Id)
	}

	return nil
}
