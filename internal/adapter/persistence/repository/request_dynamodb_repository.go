package repository

import (
	"context"
	"errors"
	"sort"
	"time"

	"petromap/internal/domain/entities"
	"petromap/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const defaultRequestsTableName = "petrol_pump_requests"

// requestItem mirrors the document layout the mobile intake app and the
// admin screens already write. Attribute names stay camelCase for
// compatibility with the existing collection. Numeric fields are stored as
// strings so NaN coordinates survive the round trip.
type requestItem struct {
	ID                    string `dynamodbav:"id"`
	Status                string `dynamodbav:"status"`
	RequestedByUserID     string `dynamodbav:"requestedByUserId,omitempty"`
	CustomerName          string `dynamodbav:"customerName"`
	Location              string `dynamodbav:"location"`
	Zone                  string `dynamodbav:"zone"`
	SalesArea             string `dynamodbav:"salesArea"`
	CoClDo                string `dynamodbav:"coClDo"`
	District              string `dynamodbav:"district"`
	SapCode               string `dynamodbav:"sapCode"`
	AddressLine1          string `dynamodbav:"addressLine1"`
	AddressLine2          string `dynamodbav:"addressLine2"`
	Pincode               string `dynamodbav:"pincode"`
	DealerName            string `dynamodbav:"dealerName"`
	ContactDetails        string `dynamodbav:"contactDetails"`
	Latitude              string `dynamodbav:"latitude"`
	Longitude             string `dynamodbav:"longitude"`
	Company               string `dynamodbav:"company"`
	RegionalOffice        string `dynamodbav:"regionalOffice"`
	BannerImageURL        string `dynamodbav:"bannerImageUrl,omitempty"`
	BoardImageURL         string `dynamodbav:"boardImageUrl,omitempty"`
	BillSlipImageURL      string `dynamodbav:"billSlipImageUrl,omitempty"`
	GovernmentDocImageURL string `dynamodbav:"governmentDocImageUrl,omitempty"`
	CreatedAt             string `dynamodbav:"createdAt"`
	CreatedBy             string `dynamodbav:"createdBy,omitempty"`
	UpdatedAt             string `dynamodbav:"updatedAt,omitempty"`
	UpdatedBy             string `dynamodbav:"updatedBy,omitempty"`
	ApprovedAt            string `dynamodbav:"approvedAt,omitempty"`
	ApprovedBy            string `dynamodbav:"approvedBy,omitempty"`
	RejectedAt            string `dynamodbav:"rejectedAt,omitempty"`
	RejectedBy            string `dynamodbav:"rejectedBy,omitempty"`
	RejectionReason       string `dynamodbav:"rejectionReason,omitempty"`
}

// RequestDynamoRepository persists PumpRequest entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)

type RequestDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IRequestRepository = (*RequestDynamoRepository)(nil)

func NewRequestDynamoRepository(ddb *dynamodb.Client) *RequestDynamoRepository {
	return &RequestDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("REQUESTS_TABLE", defaultRequestsTableName),
	}
}

// List scans the full collection and returns it newest first. The queue is
// expected to hold tens to low thousands of documents, so a paginated scan
// plus an in-memory sort is acceptable.
func (r *RequestDynamoRepository) List(ctx context.Context) ([]entities.PumpRequest, error) {
	var requests []entities.PumpRequest
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:         aws.String(r.tableName),
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it requestItem
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			requests = append(requests, fromRequestItem(it))
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}

	sort.SliceStable(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

func (r *RequestDynamoRepository) GetByID(ctx context.Context, id string) (entities.PumpRequest, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PumpRequest{}, err
	}
	if len(out.Item) == 0 {
		return entities.PumpRequest{}, nil
	}

	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PumpRequest{}, err
	}
	return fromRequestItem(it), nil
}

func (r *RequestDynamoRepository) Create(ctx context.Context, req entities.PumpRequest) (entities.PumpRequest, error) {
	it := toRequestItem(req)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PumpRequest{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.PumpRequest{}, err
	}
	return req, nil
}

func (r *RequestDynamoRepository) ApproveByID(ctx context.Context, id, actor string) (entities.PumpRequest, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #approvedAt = :approvedAt, #approvedBy = :approvedBy"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(entities.RequestStatusApproved)},
			":approvedAt": &types.AttributeValueMemberS{Value: now},
			":approvedBy": &types.AttributeValueMemberS{Value: actor},
		}
		names := map[string]string{
			"#status":     "status",
			"#approvedAt": "approvedAt",
			"#approvedBy": "approvedBy",
		}
		return expr, vals, names
	})
}

func (r *RequestDynamoRepository) RejectByID(ctx context.Context, id, actor, reason string) (entities.PumpRequest, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #rejectedAt = :rejectedAt, #rejectedBy = :rejectedBy, #rejectionReason = :rejectionReason"
		vals := map[string]types.AttributeValue{
			":status":          &types.AttributeValueMemberS{Value: string(entities.RequestStatusRejected)},
			":rejectedAt":      &types.AttributeValueMemberS{Value: now},
			":rejectedBy":      &types.AttributeValueMemberS{Value: actor},
			":rejectionReason": &types.AttributeValueMemberS{Value: reason},
		}
		names := map[string]string{
			"#status":          "status",
			"#rejectedAt":      "rejectedAt",
			"#rejectedBy":      "rejectedBy",
			"#rejectionReason": "rejectionReason",
		}
		return expr, vals, names
	})
}

// UpdateDetailsByID overwrites the edit allow-list. Image URLs are not part
// of it and are never written here.
func (r *RequestDynamoRepository) UpdateDetailsByID(ctx context.Context, id string, d entities.RequestDetails, actor string) (entities.PumpRequest, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		fields := map[string]string{
			"customerName":   d.CustomerName,
			"location":       d.Location,
			"zone":           d.Zone,
			"salesArea":      d.SalesArea,
			"coClDo":         d.CoClDo,
			"district":       d.District,
			"sapCode":        d.SapCode,
			"addressLine1":   d.AddressLine1,
			"addressLine2":   d.AddressLine2,
			"pincode":        d.Pincode,
			"dealerName":     d.DealerName,
			"contactDetails": d.ContactDetails,
			"latitude":       floatToString(d.Latitude),
			"longitude":      floatToString(d.Longitude),
			"company":        d.Company,
			"regionalOffice": d.RegionalOffice,
			"updatedBy":      actor,
			"updatedAt":      now,
		}

		// Deterministic expression order keeps requests reproducible in logs.
		keys := make([]string, 0, len(fields))
		for k := range fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		expr := "SET"
		vals := make(map[string]types.AttributeValue, len(fields))
		names := make(map[string]string, len(fields))
		for i, k := range keys {
			if i > 0 {
				expr += ","
			}
			expr += " #" + k + " = :" + k
			names["#"+k] = k
			vals[":"+k] = &types.AttributeValueMemberS{Value: fields[k]}
		}
		return expr, vals, names
	})
}

func (r *RequestDynamoRepository) DeleteByID(ctx context.Context, id string) error {
	_, err := r.ddb.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
	})
	return err
}

func (r *RequestDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.PumpRequest, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.PumpRequest{}, nil
		}
		return entities.PumpRequest{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.PumpRequest{}, nil
	}
	var it requestItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.PumpRequest{}, err
	}
	return fromRequestItem(it), nil
}

func toRequestItem(r entities.PumpRequest) requestItem {
	return requestItem{
		ID:                    r.ID,
		Status:                string(r.Status),
		RequestedByUserID:     r.RequestedByUserID,
		CustomerName:          r.CustomerName,
		Location:              r.Location,
		Zone:                  r.Zone,
		SalesArea:             r.SalesArea,
		CoClDo:                r.CoClDo,
		District:              r.District,
		SapCode:               r.SapCode,
		AddressLine1:          r.AddressLine1,
		AddressLine2:          r.AddressLine2,
		Pincode:               r.Pincode,
		DealerName:            r.DealerName,
		ContactDetails:        r.ContactDetails,
		Latitude:              floatToString(r.Latitude),
		Longitude:             floatToString(r.Longitude),
		Company:               r.Company,
		RegionalOffice:        r.RegionalOffice,
		BannerImageURL:        r.BannerImageURL,
		BoardImageURL:         r.BoardImageURL,
		BillSlipImageURL:      r.BillSlipImageURL,
		GovernmentDocImageURL: r.GovernmentDocImageURL,
		CreatedAt:             formatTime(r.CreatedAt),
		CreatedBy:             r.CreatedBy,
		UpdatedAt:             formatTime(r.UpdatedAt),
		UpdatedBy:             r.UpdatedBy,
		ApprovedAt:            formatTime(r.ApprovedAt),
		ApprovedBy:            r.ApprovedBy,
		RejectedAt:            formatTime(r.RejectedAt),
		RejectedBy:            r.RejectedBy,
		RejectionReason:       r.RejectionReason,
	}
}

func fromRequestItem(it requestItem) entities.PumpRequest {
	return entities.PumpRequest{
		ID:                it.ID,
		Status:            entities.RequestStatus(it.Status),
		RequestedByUserID: it.RequestedByUserID,
		RequestDetails: entities.RequestDetails{
			CustomerName:          it.CustomerName,
			Location:              it.Location,
			Zone:                  it.Zone,
			SalesArea:             it.SalesArea,
			CoClDo:                it.CoClDo,
			District:              it.District,
			SapCode:               it.SapCode,
			AddressLine1:          it.AddressLine1,
			AddressLine2:          it.AddressLine2,
			Pincode:               it.Pincode,
			DealerName:            it.DealerName,
			ContactDetails:        it.ContactDetails,
			Latitude:              stringToFloat(it.Latitude),
			Longitude:             stringToFloat(it.Longitude),
			Company:               it.Company,
			RegionalOffice:        it.RegionalOffice,
			BannerImageURL:        it.BannerImageURL,
			BoardImageURL:         it.BoardImageURL,
			BillSlipImageURL:      it.BillSlipImageURL,
			GovernmentDocImageURL: it.GovernmentDocImageURL,
		},
		CreatedAt:       parseFlexibleTime(it.CreatedAt),
		CreatedBy:       it.CreatedBy,
		UpdatedAt:       parseFlexibleTime(it.UpdatedAt),
		UpdatedBy:       it.UpdatedBy,
		ApprovedAt:      parseFlexibleTime(it.ApprovedAt),
		ApprovedBy:      it.ApprovedBy,
		RejectedAt:      parseFlexibleTime(it.RejectedAt),
		RejectedBy:      it.RejectedBy,
		RejectionReason: it.RejectionReason,
	}
}
