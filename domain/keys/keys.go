package keys

import (
	"strings"
)

const (
	// PfxHealthCheck is used for prefixing health check redis key
	PfxHealthCheck = "healthcheck"
	// PfxListingDraft is used for prefixing create-listing drafts
	PfxListingDraft = "listingDraft"
	// PfxMinimumNextBid is used for prefixing minimum next bid snapshots
	PfxMinimumNextBid = "minNextBid"
	// PfxEnsName is used for prefixing resolved ens names
	PfxEnsName = "ensName"
	// PfxHttpCache is used for prefixing the http cache middleware entries
	PfxHttpCache = "httpCache"
	// PfxBusy is used for prefixing per-wallet in-flight operation locks
	PfxBusy = "busy"
	// PfxNotification is used for prefixing notification channels
	PfxNotification = "notification"
)

// CustomKey is used to join the customized key by components with specified delimiter
func CustomKey(delimiter string, components ...string) string {
	return strings.Join(components, delimiter)
}

// RedisKey is used to join the redis key by components
func RedisKey(components ...string) string {
	return CustomKey(":", components...)
}

// GetPrefix returns the first component of a redis key
func GetPrefix(key string) string {
	if idx := strings.Index(key, ":"); idx > 0 {
		return key[:idx]
	}
	return key
}
