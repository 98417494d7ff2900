package model

// SourcePolicy is the per-source notification policy derived from source
// configuration. It is resolved fresh on every notification attempt, since
// configuration can change between a build's checkout and its completion.
type SourcePolicy struct {
	// NotificationsDisabled turns off all status reporting for the source.
	NotificationsDisabled bool

	// SendSuccessForUnstable reports UNSTABLE builds as SUCCESSFUL instead
	// of FAILED.
	SendSuccessForUnstable bool

	// DisableNotificationForNotBuilt suppresses the status for NOT_BUILT
	// results (Cloud reports STOPPED instead, Server reports nothing).
	DisableNotificationForNotBuilt bool

	// ShareBuildKey makes a branch project and the PR project built from it
	// report under the same status key.
	ShareBuildKey bool
}
