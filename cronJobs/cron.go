package cronJobs

import (
	"github.com/RemoteState/localnews-server/dbHelpers"
	"github.com/sirupsen/logrus"
)

// DefaultRetentionDays bounds the history log when HISTORY_RETENTION_DAYS is unset.
const DefaultRetentionDays = 90

//PurgeSearchHistory removes history rows older than the retention window.
//Runs independently of request traffic; addresses are never touched.
func PurgeSearchHistory(retentionDays int) {
	if retentionDays <= 0 {
		retentionDays = DefaultRetentionDays
	}
	removed, err := dbHelpers.PurgeHistoryOlderThan(retentionDays)
	if err != nil {
		logrus.Errorf("PurgeSearchHistory: error :%v", err)
		return
	}
	if removed > 0 {
		logrus.Infof("PurgeSearchHistory: removed %d rows older than %d days", removed, retentionDays)
	}
}
