package steps

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strconv"
	"strings"

	"github.com/cucumber/godog"
	"github.com/shopspring/decimal"

	"github.com/volttrack/backend/internal/domain/entity"
	"github.com/volttrack/backend/internal/integration/bundle"
)

// registerDataSteps registers database setup and assertion steps.
func registerDataSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the following purchases exist:$`, theFollowingPurchasesExist)
	ctx.Step(`^a spot check exists on "([^"]*)" reading (\d+(?:\.\d+)?)$`, aSpotCheckExists)
	ctx.Step(`^the db should contain (\d+) objects in the "([^"]*)" table$`, theDbShouldContainObjectsInTheTable)
	ctx.Step(`^the db should contain (\d+) objects in "([^"]*)" with the values$`, theDbShouldContainObjectsInWithTheValues)
}

// registerCollaboratorSteps registers steps driving the external service fakes.
func registerCollaboratorSteps(ctx *godog.ScenarioContext) {
	ctx.Step(`^the backup storage is not configured$`, theBackupStorageIsNotConfigured)
	ctx.Step(`^the insight service responds with summary "([^"]*)" and trend "([^"]*)"$`, theInsightServiceRespondsWith)
	ctx.Step(`^the insight service should have received (\d+) purchases? in "([^"]*)"$`, theInsightServiceShouldHaveReceived)
	ctx.Step(`^the email provider rejects emails with status (\d+)$`, theEmailProviderRejectsEmails)
	ctx.Step(`^the alert worker processes pending alerts$`, theAlertWorkerProcessesPendingAlerts)
	ctx.Step(`^the email provider should have received (\d+) emails?$`, theEmailProviderShouldHaveReceived)
	ctx.Step(`^the email provider request (\d+) field "([^"]*)" should be "([^"]*)"$`, theEmailProviderRequestFieldShouldBe)
	ctx.Step(`^the email provider request (\d+) header "([^"]*)" should be "([^"]*)"$`, theEmailProviderRequestHeaderShouldBe)
}

// theFollowingPurchasesExist seeds purchases from a table with the columns
// date, meter_reading, price, vat, service_fee and units.
func theFollowingPurchasesExist(ctx context.Context, table *godog.Table) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if len(table.Rows) < 2 {
		return fmt.Errorf("purchase table needs a header and at least one row")
	}

	header := make([]string, len(table.Rows[0].Cells))
	for i, cell := range table.Rows[0].Cells {
		header[i] = cell.Value
	}

	for _, row := range table.Rows[1:] {
		values := make(map[string]string, len(header))
		for i, cell := range row.Cells {
			values[header[i]] = cell.Value
		}

		timestamp, err := bundle.ParseDate(values["date"])
		if err != nil {
			return err
		}
		reading, err := strconv.ParseFloat(values["meter_reading"], 64)
		if err != nil {
			return fmt.Errorf("invalid meter_reading %q: %w", values["meter_reading"], err)
		}
		units, err := strconv.ParseFloat(orDefault(values["units"], "0"), 64)
		if err != nil {
			return fmt.Errorf("invalid units %q: %w", values["units"], err)
		}

		record := entity.NewPurchase(
			timestamp,
			reading,
			decimal.RequireFromString(orDefault(values["price"], "0")),
			decimal.RequireFromString(orDefault(values["vat"], "0")),
			decimal.RequireFromString(orDefault(values["service_fee"], "0")),
			units,
		)
		if err := tc.injector.RecordRepo.Create(ctx, record); err != nil {
			return fmt.Errorf("failed to seed purchase: %w", err)
		}
	}
	return nil
}

func aSpotCheckExists(ctx context.Context, date string, reading float64) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	timestamp, err := bundle.ParseDate(date)
	if err != nil {
		return err
	}
	return tc.injector.RecordRepo.Create(ctx, entity.NewSpotCheck(timestamp, reading))
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func theDbShouldContainObjectsInTheTable(ctx context.Context, quantity int, table string) error {
	return countRows(ctx, quantity, table, nil)
}

func theDbShouldContainObjectsInWithTheValues(ctx context.Context, quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(content.Content), &criteria); err != nil {
		return err
	}
	return countRows(ctx, quantity, table, criteria)
}

func countRows(ctx context.Context, quantity int, table string, criteria map[string]any) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}

	row, ok := tc.db.GetModel(table)
	if !ok {
		return fmt.Errorf("table '%s' not found in models", table)
	}

	entitySlicePtr := reflect.New(reflect.SliceOf(reflect.TypeOf(row).Elem()))

	query := tc.db.DbConn.WithContext(ctx)
	for key, value := range criteria {
		query = query.Where(fmt.Sprintf("%s = ?", key), value)
	}
	if err := query.Find(entitySlicePtr.Interface()).Error; err != nil {
		return err
	}

	if count := entitySlicePtr.Elem().Len(); count != quantity {
		return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
	}
	return nil
}

func theBackupStorageIsNotConfigured(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.storage.setUnavailable()
	return nil
}

func theInsightServiceRespondsWith(ctx context.Context, summary, trend string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	tc.insight.respondWith(&entity.Insight{
		Summary:         summary,
		Trend:           trend,
		Recommendations: []string{"Buy electricity before the monthly tariff increase."},
	})
	return nil
}

func theInsightServiceShouldHaveReceived(ctx context.Context, count int, currency string) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	request := tc.insight.lastRequest()
	if request == nil {
		return fmt.Errorf("insight service was not called")
	}
	if len(request.Purchases) != count {
		return fmt.Errorf("expected %d purchases in digest, got %d", count, len(request.Purchases))
	}
	if request.Currency != currency {
		return fmt.Errorf("expected currency %q, got %q", currency, request.Currency)
	}
	return nil
}

func theEmailProviderRejectsEmails(ctx context.Context, status int) error {
	emailProvider().SetResponse(-1, "POST", resendEmailsPath, status, map[string]any{
		"statusCode": status,
		"name":       "validation_error",
		"message":    "Invalid `to` field.",
	})
	return nil
}

func theAlertWorkerProcessesPendingAlerts(ctx context.Context) error {
	tc := GetTestContext(ctx)
	if tc == nil {
		return fmt.Errorf("test context not found")
	}
	if tc.injector.EmailWorker == nil {
		return fmt.Errorf("email worker is not enabled")
	}
	tc.injector.EmailWorker.ProcessNow(ctx)
	return nil
}

func theEmailProviderShouldHaveReceived(ctx context.Context, count int) error {
	if actual := emailProvider().RequestCount("POST", resendEmailsPath); actual != count {
		return fmt.Errorf("expected %d emails, got %d", count, actual)
	}
	return nil
}

func theEmailProviderRequestFieldShouldBe(ctx context.Context, index int, field, expected string) error {
	body := emailProvider().GetRequestBody("POST", resendEmailsPath, index)
	if body == nil {
		return fmt.Errorf("email request %d not found", index)
	}

	value := getFieldValue(body, field)
	if value == nil {
		return fmt.Errorf("field '%s' not found in email request: %v", field, body)
	}
	if actual := fmt.Sprintf("%v", value); actual != expected {
		return fmt.Errorf("email field '%s' expected '%s', got '%s'", field, expected, actual)
	}
	return nil
}

func theEmailProviderRequestHeaderShouldBe(ctx context.Context, index int, header, expected string) error {
	headers := emailProvider().GetRequestHeaders("POST", resendEmailsPath, index)
	if headers == nil {
		return fmt.Errorf("email request %d not found", index)
	}
	if actual := headers[http.CanonicalHeaderKey(header)]; actual != expected {
		return fmt.Errorf("email header '%s' expected '%s', got '%s'", header, expected, actual)
	}
	return nil
}
