package utils

import (
	"github.com/sirupsen/logrus"

	"github.com/terryso/binance-dashboard/tools/config"
	"github.com/terryso/binance-dashboard/utils/log"
)

var Log *logrus.Logger

func init() {
	config.LoadConf()
	Log = log.InitLogger()

	Log.Infof("------------------------------------")
	Log.Infof("----- Application Initializing -----")
	Log.Infof("------------------------------------")
}
