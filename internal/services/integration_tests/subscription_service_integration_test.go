package integration_tests

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hirehub/ent"
	"hirehub/internal/models"
	"hirehub/internal/notify"
	"hirehub/internal/services"
	"hirehub/internal/storage/postgres"
	"hirehub/internal/transport/dto"
)

func setupSubscriptionIntegrationTest(t *testing.T) (context.Context, services.SubscriptionService, *ent.Client) {
	t.Helper()
	pool := getTestClient(t)
	svc := services.NewSubscriptionService(
		postgres.NewSubscriptionRepo(pool),
		postgres.NewPackageRepo(pool),
		postgres.NewUserRepo(pool),
		pool,
		notify.NoopNotifier{},
	)
	return context.Background(), svc, pool
}

func TestIntegration_GrantPackage_CreatesSubscription(t *testing.T) {
	ctx, svc, pool := setupSubscriptionIntegrationTest(t)
	defer cleanupTables(ctx, t, pool, "subscription_history", "subscriptions", "packages", "users")

	employer := createTestUser(t, ctx, pool, "grant-create@test.com", "Grant Create", models.RoleEmployer)
	pkg := createTestPackage(t, ctx, pool, "Standard", 5, models.PackageTypeStandard)

	sub, err := svc.GrantPackage(ctx, &dto.GrantPackageRequest{
		EmployerID:    employer.ID,
		PackageID:     pkg.ID,
		TransactionID: "txn_create_001",
	})

	require.NoError(t, err)
	assert.Equal(t, employer.ID, sub.EmployerID)
	assert.Equal(t, pkg.ID, sub.PackageID)
	assert.Equal(t, 5, sub.Credits)
	assert.Equal(t, 5, sub.CreditAllowance)
	assert.Equal(t, "txn_create_001", sub.TransactionID)

	history, err := svc.History(ctx, employer.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestIntegration_GrantPackage_ArchivesPreviousSnapshotUnchanged(t *testing.T) {
	ctx, svc, pool := setupSubscriptionIntegrationTest(t)
	defer cleanupTables(ctx, t, pool, "subscription_history", "subscriptions", "packages", "users")

	employer := createTestUser(t, ctx, pool, "grant-archive@test.com", "Grant Archive", models.RoleEmployer)
	first := createTestPackage(t, ctx, pool, "Standard", 5, models.PackageTypeStandard)
	second := createTestPackage(t, ctx, pool, "Enterprise", 10, models.PackageTypeEnterprise)

	_, err := svc.GrantPackage(ctx, &dto.GrantPackageRequest{
		EmployerID:    employer.ID,
		PackageID:     first.ID,
		TransactionID: "txn_archive_001",
	})
	require.NoError(t, err)

	// Spend two credits so the archived snapshot has a mid-life balance.
	for i := 0; i < 2; i++ {
		_, err = svc.DebitCredit(ctx, employer.ID)
		require.NoError(t, err)
	}

	sub, err := svc.GrantPackage(ctx, &dto.GrantPackageRequest{
		EmployerID:    employer.ID,
		PackageID:     second.ID,
		TransactionID: "txn_archive_002",
	})
	require.NoError(t, err)

	// The live subscription restarts at the new allowance.
	assert.Equal(t, second.ID, sub.PackageID)
	assert.Equal(t, 10, sub.Credits)
	assert.Equal(t, 10, sub.CreditAllowance)
	assert.Equal(t, "txn_archive_002", sub.TransactionID)

	// The superseded package is archived with its remaining balance intact.
	history, err := svc.History(ctx, employer.ID)
	require.NoError(t, err)
	require.Len(t, history, 1)
	assert.Equal(t, first.ID, history[0].PackageID)
	assert.Equal(t, 3, history[0].Credits)
	assert.Equal(t, 5, history[0].CreditAllowance)
	assert.Equal(t, "txn_archive_001", history[0].TransactionID)
}

func TestIntegration_GrantPackage_ReplayKeepsBalance(t *testing.T) {
	ctx, svc, pool := setupSubscriptionIntegrationTest(t)
	defer cleanupTables(ctx, t, pool, "subscription_history", "subscriptions", "packages", "users")

	employer := createTestUser(t, ctx, pool, "grant-replay@test.com", "Grant Replay", models.RoleEmployer)
	pkg := createTestPackage(t, ctx, pool, "Standard", 5, models.PackageTypeStandard)

	_, err := svc.GrantPackage(ctx, &dto.GrantPackageRequest{
		EmployerID:    employer.ID,
		PackageID:     pkg.ID,
		TransactionID: "txn_replay_001",
	})
	require.NoError(t, err)

	_, err = svc.DebitCredit(ctx, employer.ID)
	require.NoError(t, err)

	// A gateway retry of the same transaction must not reset the counter
	// or grow the history.
	sub, err := svc.GrantPackage(ctx, &dto.GrantPackageRequest{
		EmployerID:    employer.ID,
		PackageID:     pkg.ID,
		TransactionID: "txn_replay_001",
	})
	require.NoError(t, err)
	assert.Equal(t, 4, sub.Credits)

	history, err := svc.History(ctx, employer.ID)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestIntegration_GrantPackage_SequentialGrantsStackHistory(t *testing.T) {
	ctx, svc, pool := setupSubscriptionIntegrationTest(t)
	defer cleanupTables(ctx, t, pool, "subscription_history", "subscriptions", "packages", "users")

	employer := createTestUser(t, ctx, pool, "grant-stack@test.com", "Grant Stack", models.RoleEmployer)
	pkg := createTestPackage(t, ctx, pool, "Standard", 5, models.PackageTypeStandard)

	for i := 1; i <= 3; i++ {
		_, err := svc.GrantPackage(ctx, &dto.GrantPackageRequest{
			EmployerID:    employer.ID,
			PackageID:     pkg.ID,
			TransactionID: fmt.Sprintf("txn_stack_%03d", i),
		})
		require.NoError(t, err)
	}

	// Most recent archive first.
	history, err := svc.History(ctx, employer.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "txn_stack_002", history[0].TransactionID)
	assert.Equal(t, "txn_stack_001", history[1].TransactionID)
}
