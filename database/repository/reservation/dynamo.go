package reservationRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"danielsbarber/models"
)

// sortKeyAttribute is the literal sort key attribute name on the
// bookings table.
const sortKeyAttribute = "time#barberId#customerId"

// SortKeyValue builds the compound sort key for a reservation.
func SortKeyValue(timeLabel, barberID, customerID string) string {
	return timeLabel + "#" + barberID + "#" + customerID
}

// SlotGuardKey builds the sort key of the guard item that serializes
// admission for a (time, barber) pair. Guard keys have two segments,
// reservation keys three, so guards sort alongside the bookings they
// protect and prefix queries still work.
func SlotGuardKey(timeLabel, barberID string) string {
	return timeLabel + "#" + barberID
}

type dynamoReservationRepo struct {
	client *dynamodb.Client
	table  string
}

// NewDynamoReservationRepo returns a ReservationRepository backed by
// the given DynamoDB client and table.
func NewDynamoReservationRepo(client *dynamodb.Client, table string) ReservationRepository {
	return &dynamoReservationRepo{client: client, table: table}
}

func (r *dynamoReservationRepo) GetByDate(ctx context.Context, date, barberID string) ([]models.Reservation, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// "date" is a DynamoDB reserved word.
	names := map[string]string{"#dateAttr": "date"}
	values := map[string]types.AttributeValue{
		":dateValue": &types.AttributeValueMemberS{Value: date},
	}

	// Guard items carry no payment reference; skip them.
	filter := "attribute_exists(paymentIntentId)"
	if barberID != "" {
		filter += " AND barberId = :barberId"
		values[":barberId"] = &types.AttributeValueMemberS{Value: barberID}
	}

	input := &dynamodb.QueryInput{
		TableName:                 aws.String(r.table),
		KeyConditionExpression:    aws.String("#dateAttr = :dateValue"),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  names,
		ExpressionAttributeValues: values,
	}

	var reservations []models.Reservation
	paginator := dynamodb.NewQueryPaginator(r.client, input)
	for paginator.HasMorePages() {
		page, err := paginator.NextPage(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to query bookings: %w", err)
		}
		var batch []models.Reservation
		if err := attributevalue.UnmarshalListOfMaps(page.Items, &batch); err != nil {
			return nil, fmt.Errorf("failed to unmarshal bookings: %w", err)
		}
		reservations = append(reservations, batch...)
	}
	return reservations, nil
}

func (r *dynamoReservationRepo) Create(ctx context.Context, res models.Reservation) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	item, err := attributevalue.MarshalMap(res)
	if err != nil {
		return fmt.Errorf("failed to marshal booking: %w", err)
	}

	guard := map[string]types.AttributeValue{
		"date":           &types.AttributeValueMemberS{Value: res.Date},
		sortKeyAttribute: &types.AttributeValueMemberS{Value: SlotGuardKey(res.Time, res.BarberID)},
		"time":           &types.AttributeValueMemberS{Value: res.Time},
		"barberId":       &types.AttributeValueMemberS{Value: res.BarberID},
	}

	// The guard put fails its condition when another confirmed booking
	// already holds the slot, cancelling the whole transaction.
	_, err = r.client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: []types.TransactWriteItem{
			{
				Put: &types.Put{
					TableName:                aws.String(r.table),
					Item:                     guard,
					ConditionExpression:      aws.String("attribute_not_exists(#sortKey)"),
					ExpressionAttributeNames: map[string]string{"#sortKey": sortKeyAttribute},
				},
			},
			{
				Put: &types.Put{
					TableName: aws.String(r.table),
					Item:      item,
				},
			},
		},
	})
	if err != nil {
		var canceled *types.TransactionCanceledException
		if errors.As(err, &canceled) {
			for _, reason := range canceled.CancellationReasons {
				if aws.ToString(reason.Code) == "ConditionalCheckFailed" {
					return ErrSlotTaken
				}
			}
		}
		return fmt.Errorf("failed to write booking: %w", err)
	}
	return nil
}
