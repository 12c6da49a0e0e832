package dynamodb

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/chris/library-lending/pkg/fees"
	"github.com/chris/library-lending/pkg/storage"
)

// GetLateFeeConfig reads the late fee configuration, returning storage.ErrNotFound until one is saved.
func (s *Store) GetLateFeeConfig(ctx context.Context) (fees.Config, error) {
	key, err := attributevalue.MarshalMap(map[string]string{"setting_key": lateFeeSetting})
	if err != nil {
		return fees.Config{}, fmt.Errorf("failed to marshal setting key: %w", err)
	}

	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.SettingsTableName),
		Key:            key,
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return fees.Config{}, fmt.Errorf("failed to get late fee configuration: %w", err)
	}
	if result.Item == nil {
		return fees.Config{}, storage.ErrNotFound
	}

	var record lateFeeRecord
	if err := attributevalue.UnmarshalMap(result.Item, &record); err != nil {
		return fees.Config{}, fmt.Errorf("failed to unmarshal late fee configuration: %w", err)
	}
	return record.toConfig()
}

// PutLateFeeConfig replaces the late fee configuration.
func (s *Store) PutLateFeeConfig(ctx context.Context, cfg fees.Config) error {
	item, err := attributevalue.MarshalMap(lateFeeRecord{
		Key:      lateFeeSetting,
		Enabled:  cfg.Enabled,
		Rate:     cfg.Rate.String(),
		Interval: cfg.Interval,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal late fee configuration: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(s.SettingsTableName),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("failed to put late fee configuration: %w", err)
	}
	return nil
}
