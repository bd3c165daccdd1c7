// Package metrics wraps datadog-go to facilitate metric recording.
// Naming convention:
// - Internal process time: *.time
// - External latency: *.latency
// - Error: *.err
package metrics

import (
	"fmt"
	"sync"
	"time"

	"github.com/DataDog/datadog-go/statsd"
	"github.com/spf13/viper"

	"github.com/Lugdu84/ebay-clone-nft/base/log"
)

// ddRate is the rate to pass metrics to the datadog agent. 1 means always.
const ddRate = 1

// buffer this many counters before flushing to the statsd agent
const bufferMetrics = 10

var (
	initOnce sync.Once
	client   statsCli
)

type statsCli interface {
	Gauge(name string, value float64, tags []string, rate float64) error
	Count(name string, value int64, tags []string, rate float64) error
	Histogram(name string, value float64, tags []string, rate float64) error
	TimeInMilliseconds(name string, value float64, tags []string, rate float64) error
}

type noopCli struct{}

func (noopCli) Gauge(string, float64, []string, float64) error              { return nil }
func (noopCli) Count(string, int64, []string, float64) error                { return nil }
func (noopCli) Histogram(string, float64, []string, float64) error          { return nil }
func (noopCli) TimeInMilliseconds(string, float64, []string, float64) error { return nil }

func initClient() {
	host := viper.GetString("datadog_host")
	if host == "" {
		client = noopCli{}
		return
	}
	addr := fmt.Sprintf("%s:%d", host, 8125)
	log.Log().WithField("addr", addr).Info("connecting to datadog agent")
	c, err := statsd.NewBuffered(addr, bufferMetrics)
	if err != nil {
		log.Log().WithFields(log.Fields{"addr": addr, "err": err}).Warn("can't talk to datadog agent, metrics disabled")
		client = noopCli{}
		return
	}
	client = c
}

// Ender closes a BumpTime measurement
type Ender interface {
	End()
}

// Service provides interface for metrics
type Service interface {
	BumpAvg(key string, val float64, tags ...string)
	BumpSum(key string, val float64, tags ...string)
	BumpHistogram(key string, val float64, tags ...string)
	BumpTime(key string, tags ...string) Ender
}

// New creates a metric client with package name as prefix
func New(pkgName string) Service {
	return &Metrics{
		pkgName: pkgName,
		ddTags: []string{
			// using host removes all tags associated with host
			"host:",
			"env:" + viper.GetString("env_name"),
			"app:" + viper.GetString("app_name"),
		},
	}
}

type Metrics struct {
	pkgName string
	ddTags  []string
}

func (mt *Metrics) tags(extra []string) []string {
	tags := append([]string{}, mt.ddTags...)
	for i := 0; i+1 < len(extra); i += 2 {
		tags = append(tags, extra[i]+":"+extra[i+1])
	}
	return tags
}

func (mt *Metrics) BumpAvg(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	client.Gauge(mt.pkgName+"."+key, val, mt.tags(tags), ddRate)
}

func (mt *Metrics) BumpSum(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	client.Count(mt.pkgName+"."+key, int64(val), mt.tags(tags), ddRate)
}

func (mt *Metrics) BumpHistogram(key string, val float64, tags ...string) {
	initOnce.Do(initClient)
	client.Histogram(mt.pkgName+"."+key, val, mt.tags(tags), ddRate)
}

type timeEnder struct {
	mt    *Metrics
	key   string
	tags  []string
	start time.Time
}

func (e *timeEnder) End() {
	initOnce.Do(initClient)
	client.TimeInMilliseconds(e.mt.pkgName+"."+e.key, float64(time.Since(e.start))/float64(time.Millisecond), e.mt.tags(e.tags), ddRate)
}

func (mt *Metrics) BumpTime(key string, tags ...string) Ender {
	return &timeEnder{mt: mt, key: key, tags: tags, start: time.Now()}
}
