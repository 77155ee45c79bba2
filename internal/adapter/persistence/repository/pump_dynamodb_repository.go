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

const defaultPumpsTableName = "petrol_pumps"

type pumpItem struct {
	ID                    string `dynamodbav:"id"`
	Zone                  string `dynamodbav:"zone"`
	SalesArea             string `dynamodbav:"salesArea"`
	CoClDo                string `dynamodbav:"coClDo"`
	District              string `dynamodbav:"district"`
	SapCode               string `dynamodbav:"sapCode"`
	CustomerName          string `dynamodbav:"customerName"`
	Location              string `dynamodbav:"location"`
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
	ApprovedAt            string `dynamodbav:"approvedAt"`
	ApprovedBy            string `dynamodbav:"approvedBy"`
	RequestID             string `dynamodbav:"requestId"`
	Status                string `dynamodbav:"status"`
	IsVerified            bool   `dynamodbav:"isVerified"`
}

// PumpDynamoRepository persists published PetrolPump entries in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//
// The review workflow only inserts; ListDistricts does a projected scan
// for the autocomplete catalogue.

type PumpDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPumpRepository = (*PumpDynamoRepository)(nil)

func NewPumpDynamoRepository(ddb *dynamodb.Client) *PumpDynamoRepository {
	return &PumpDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PUMPS_TABLE", defaultPumpsTableName),
	}
}

func (r *PumpDynamoRepository) Create(ctx context.Context, p entities.PetrolPump) (entities.PetrolPump, error) {
	it := toPumpItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.PetrolPump{}, err
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
		return entities.PetrolPump{}, err
	}
	return p, nil
}

func (r *PumpDynamoRepository) ListDistricts(ctx context.Context) ([]string, error) {
	var districts []string
	var startKey map[string]types.AttributeValue

	for {
		out, err := r.ddb.Scan(ctx, &dynamodb.ScanInput{
			TableName:            aws.String(r.tableName),
			ProjectionExpression: aws.String("#district"),
			ExpressionAttributeNames: map[string]string{
				"#district": "district",
			},
			ExclusiveStartKey: startKey,
		})
		if err != nil {
			return nil, err
		}
		for _, raw := range out.Items {
			var it struct {
				District string `dynamodbav:"district"`
			}
			if err := attributevalue.UnmarshalMap(raw, &it); err != nil {
				return nil, err
			}
			districts = append(districts, it.District)
		}
		if len(out.LastEvaluatedKey) == 0 {
			break
		}
		startKey = out.LastEvaluatedKey
	}
	return districts, nil
}

func toPumpItem(p entities.PetrolPump) pumpItem {
	return pumpItem{
		ID:                    p.ID,
		Zone:                  p.Zone,
		SalesArea:             p.SalesArea,
		CoClDo:                p.CoClDo,
		District:              p.District,
		SapCode:               p.SapCode,
		CustomerName:          p.CustomerName,
		Location:              p.Location,
		AddressLine1:          p.AddressLine1,
		AddressLine2:          p.AddressLine2,
		Pincode:               p.Pincode,
		DealerName:            p.DealerName,
		ContactDetails:        p.ContactDetails,
		Latitude:              floatToString(p.Latitude),
		Longitude:             floatToString(p.Longitude),
		Company:               p.Company,
		RegionalOffice:        p.RegionalOffice,
		BannerImageURL:        p.BannerImageURL,
		BoardImageURL:         p.BoardImageURL,
		BillSlipImageURL:      p.BillSlipImageURL,
		GovernmentDocImageURL: p.GovernmentDocImageURL,
		ApprovedAt:            formatTime(p.ApprovedAt),
		ApprovedBy:            p.ApprovedBy,
		RequestID:             p.RequestID,
		Status:                p.Status,
		IsVerified:            p.IsVerified,
	}
}
