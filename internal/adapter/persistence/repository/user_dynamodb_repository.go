package repository

import (
	"context"

	"petromap/internal/domain/entities"
	"petromap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultUsersTableName = "user_data"
	usersUserIDIndex      = "userId-index"
)

type userItem struct {
	ID     string `dynamodbav:"id"`
	UserID string `dynamodbav:"userId"`
	Name   string `dynamodbav:"name"`
	Email  string `dynamodbav:"email"`
	Phone  string `dynamodbav:"phone"`
}

// UserDynamoRepository reads the user_data collection.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: userId-index (PK: userId)

type UserDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IUserRepository = (*UserDynamoRepository)(nil)

func NewUserDynamoRepository(ddb *dynamodb.Client) *UserDynamoRepository {
	return &UserDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("USERS_TABLE", defaultUsersTableName),
	}
}

func (r *UserDynamoRepository) GetByID(ctx context.Context, id string) (entities.UserProfile, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(out.Item) == 0 {
		return entities.UserProfile{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

func (r *UserDynamoRepository) FindByUserID(ctx context.Context, userID string) (entities.UserProfile, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(usersUserIDIndex),
		KeyConditionExpression: aws.String("userId = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.UserProfile{}, err
	}
	if len(out.Items) == 0 {
		return entities.UserProfile{}, nil
	}

	var it userItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.UserProfile{}, err
	}
	return fromUserItem(it), nil
}

func fromUserItem(it userItem) entities.UserProfile {
	profile := entities.UserProfile{
		UserID: it.UserID,
		Name:   it.Name,
		Email:  it.Email,
		Phone:  it.Phone,
	}
	if profile.UserID == "" {
		profile.UserID = it.ID
	}
	return profile
}
