// Package mongo exports the source collection from the document store as an
// in-memory tabular frame.
package mongo

import (
	"context"
	"fmt"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"netsentry/domain/frame"
	"netsentry/internal/errors"
)

// Exporter reads a whole collection into a frame.
type Exporter struct {
	client         *mongo.Client
	databaseName   string
	collectionName string
}

// NewExporter connects to the document store. Close must be called when done.
func NewExporter(ctx context.Context, url, databaseName, collectionName string) (*Exporter, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(url))
	if err != nil {
		return nil, errors.Ingestion("failed to connect to document store", err)
	}
	return &Exporter{
		client:         client,
		databaseName:   databaseName,
		collectionName: collectionName,
	}, nil
}

// Close disconnects from the document store.
func (e *Exporter) Close(ctx context.Context) error {
	return e.client.Disconnect(ctx)
}

// ExportCollection fetches every document and assembles a rectangular frame.
// Column order follows first appearance across documents; the store's _id
// field is dropped. Cells absent from a document are left empty.
func (e *Exporter) ExportCollection(ctx context.Context) (*frame.Frame, error) {
	coll := e.client.Database(e.databaseName).Collection(e.collectionName)

	cursor, err := coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, errors.Ingestion(fmt.Sprintf("failed to query %s.%s", e.databaseName, e.collectionName), err)
	}
	defer cursor.Close(ctx)

	var docs []bson.D
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, errors.Ingestion("failed to decode documents", err)
	}

	return framify(docs)
}

// framify turns ordered documents into a frame, preserving key order.
func framify(docs []bson.D) (*frame.Frame, error) {
	var columns []string
	index := make(map[string]int)
	for _, doc := range docs {
		for _, el := range doc {
			if el.Key == "_id" {
				continue
			}
			if _, ok := index[el.Key]; !ok {
				index[el.Key] = len(columns)
				columns = append(columns, el.Key)
			}
		}
	}

	records := make([][]string, 0, len(docs))
	for _, doc := range docs {
		rec := make([]string, len(columns))
		for _, el := range doc {
			if el.Key == "_id" {
				continue
			}
			rec[index[el.Key]] = cellString(el.Value)
		}
		records = append(records, rec)
	}

	return frame.New(columns, records)
}

func cellString(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'g', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(t), 'g', -1, 32)
	case int32:
		return strconv.FormatInt(int64(t), 10)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	case primitive.Decimal128:
		return t.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
