package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/glebarez/sqlite"
	auditdomain "github.com/safee-analytics/erp-bridge/internal/audit/domain"
	"github.com/safee-analytics/erp-bridge/internal/audit/repository"
	auditcontext "github.com/safee-analytics/erp-bridge/internal/auditcontext"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, gdb.AutoMigrate(&auditdomain.AuditLog{}))
	return gdb
}

func newTestAuditService(t *testing.T) (auditdomain.Service, *gorm.DB) {
	t.Helper()
	node, err := snowflake.NewNode(1)
	require.NoError(t, err)
	gdb := newTestDB(t)
	svc := NewService(Params{
		DB:    gdb,
		Log:   zap.NewNop(),
		GenID: node,
		Repo:  repository.Provide(),
	})
	return svc, gdb
}

func TestRecordMasksSecretsAndStampsContext(t *testing.T) {
	svc, gdb := newTestAuditService(t)

	ctx := auditcontext.WithRequestID(context.Background(), "req-123")
	ctx = auditcontext.WithIPAddress(ctx, "203.0.113.7")
	ctx = auditcontext.WithUserAgent(ctx, "erp-cli/1.0")

	err := svc.Record(ctx, "payment.created", "payment", 42, map[string]any{
		"amount":       500.0,
		"api_password": "supersecret",
	})
	require.NoError(t, err)

	var entry auditdomain.AuditLog
	require.NoError(t, gdb.First(&entry).Error)
	assert.Equal(t, "payment.created", entry.Action)
	assert.Equal(t, "payment", entry.TargetType)
	require.NotNil(t, entry.TargetID)
	assert.Equal(t, "42", *entry.TargetID)
	require.NotNil(t, entry.IPAddress)
	assert.Equal(t, "203.0.113.7", *entry.IPAddress)
	require.NotNil(t, entry.UserAgent)
	assert.Equal(t, "erp-cli/1.0", *entry.UserAgent)
	assert.Equal(t, "req-123", entry.Metadata["request_id"])
	assert.Equal(t, "****cret", entry.Metadata["api_password"])
}

func TestRecordRejectsBlankAction(t *testing.T) {
	svc, _ := newTestAuditService(t)

	err := svc.Record(context.Background(), "   ", "payment", 1, nil)
	assert.ErrorIs(t, err, auditdomain.ErrInvalidAction)
}

func TestRecordDefaultsTargetType(t *testing.T) {
	svc, gdb := newTestAuditService(t)

	require.NoError(t, svc.Record(context.Background(), "batch.validate_invoices", "", 0, nil))

	var entry auditdomain.AuditLog
	require.NoError(t, gdb.First(&entry).Error)
	assert.Equal(t, "unknown", entry.TargetType)
	assert.Nil(t, entry.TargetID)
}

func TestListRejectsInvertedTimeRange(t *testing.T) {
	svc, _ := newTestAuditService(t)

	start := time.Now()
	end := start.Add(-time.Hour)
	req := auditdomain.ListAuditLogRequest{StartAt: &start, EndAt: &end}

	_, err := svc.List(context.Background(), req)
	assert.ErrorIs(t, err, auditdomain.ErrInvalidTimeRange)
}

func TestListRejectsMalformedPageToken(t *testing.T) {
	svc, _ := newTestAuditService(t)

	req := auditdomain.ListAuditLogRequest{}
	req.PageToken = "not-base64!!"

	_, err := svc.List(context.Background(), req)
	assert.ErrorIs(t, err, auditdomain.ErrInvalidPageToken)
}

func TestListPagesNewestFirstWithCursor(t *testing.T) {
	svc, _ := newTestAuditService(t)

	ctx := context.Background()
	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Record(ctx, "invoice.posted", "invoice", int64(i+1), nil))
		// Snowflake IDs already order same-timestamp rows; the sleep keeps
		// created_at strictly increasing so cursor comparisons stay simple.
		time.Sleep(2 * time.Millisecond)
	}

	req := auditdomain.ListAuditLogRequest{}
	req.PageSize = 2
	first, err := svc.List(ctx, req)
	require.NoError(t, err)
	require.Len(t, first.AuditLogs, 2)
	assert.True(t, first.PageInfo.HasMore)
	require.NotEmpty(t, first.PageInfo.NextPageToken)
	require.NotNil(t, first.AuditLogs[0].TargetID)
	assert.Equal(t, "5", *first.AuditLogs[0].TargetID)

	req.PageToken = first.PageInfo.NextPageToken
	second, err := svc.List(ctx, req)
	require.NoError(t, err)
	require.Len(t, second.AuditLogs, 2)
	assert.True(t, second.PageInfo.HasMore)
	require.NotNil(t, second.AuditLogs[0].TargetID)
	assert.Equal(t, "3", *second.AuditLogs[0].TargetID)

	req.PageToken = second.PageInfo.NextPageToken
	third, err := svc.List(ctx, req)
	require.NoError(t, err)
	require.Len(t, third.AuditLogs, 1)
	assert.False(t, third.PageInfo.HasMore)
}

func TestListFiltersByActionAndTarget(t *testing.T) {
	svc, _ := newTestAuditService(t)

	ctx := context.Background()
	require.NoError(t, svc.Record(ctx, "invoice.posted", "invoice", 7, nil))
	require.NoError(t, svc.Record(ctx, "payment.created", "payment", 7, nil))
	require.NoError(t, svc.Record(ctx, "invoice.posted", "invoice", 9, nil))

	req := auditdomain.ListAuditLogRequest{Action: "invoice.posted", TargetID: "7"}
	resp, err := svc.List(ctx, req)
	require.NoError(t, err)
	require.Len(t, resp.AuditLogs, 1)
	assert.Equal(t, "invoice", resp.AuditLogs[0].TargetType)
}
