package types

const (
	ActionProviderFailed            = "provider_failed"
	ActionSampleFallback            = "sample_fallback"
	ActionCacheFailed               = "cache_failed"
	ActionLLMFailed                 = "llm_failed"
	ActionDatabaseConnected         = "database_connected"
	ActionDatabaseTransactionFailed = "database_transaction_failed"
	ActionMigration                 = "migration"
	ActionCachePurged               = "cache_purged"
	ActionReplayStarted             = "telemetry_replay_started"
	ActionReplayFinished            = "telemetry_replay_finished"
	ActionExternalServiceFailed     = "external_service_failed"
)
