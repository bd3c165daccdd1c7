// Package webresource reads pinned token resources back from IPFS.
package webresource

import (
	"encoding/json"
	"io/ioutil"
	"strings"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"

	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/domain/asset"
)

type Reader interface {
	Get(c ctx.Ctx, uri string) ([]byte, error)
	GetMetadata(c ctx.Ctx, uri string) (*asset.Metadata, error)
}

type impl struct {
	shell      *ipfsapi.Shell
	ctxTimeout time.Duration
}

func New(s *ipfsapi.Shell, timeout time.Duration) Reader {
	return &impl{shell: s, ctxTimeout: timeout}
}

// toCid strips the ipfs:// scheme from a token uri.
func toCid(uri string) string {
	return strings.TrimPrefix(uri, "ipfs://")
}

func (r *impl) Get(c ctx.Ctx, uri string) ([]byte, error) {
	ctx, cancel := ctx.WithTimeout(c, r.ctxTimeout)
	defer cancel()
	resp, err := r.shell.Request("cat", toCid(uri)).Send(ctx)
	if err != nil {
		c.WithField("err", err).Error("shell.Request failed")
		return nil, err
	}
	if resp.Error != nil {
		c.WithField("resp.Error", resp.Error).Error("shell.Request failed")
		return nil, resp.Error
	}
	return ioutil.ReadAll(resp.Output)
}

func (r *impl) GetMetadata(c ctx.Ctx, uri string) (*asset.Metadata, error) {
	raw, err := r.Get(c, uri)
	if err != nil {
		return nil, err
	}
	meta := &asset.Metadata{}
	if err := json.Unmarshal(raw, meta); err != nil {
		c.WithField("err", err).Error("json.Unmarshal failed")
		return nil, err
	}
	return meta, nil
}
