package main

import (
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	ipfsapi "github.com/ipfs/go-ipfs-api"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/go-playground/validator/v10"

	"github.com/Lugdu84/ebay-clone-nft/base/ctx"
	"github.com/Lugdu84/ebay-clone-nft/base/database/mongoclient"
	"github.com/Lugdu84/ebay-clone-nft/base/database/redisclient"
	"github.com/Lugdu84/ebay-clone-nft/base/log"
	"github.com/Lugdu84/ebay-clone-nft/base/metrics"
	bValidator "github.com/Lugdu84/ebay-clone-nft/base/validator"
	"github.com/Lugdu84/ebay-clone-nft/domain"
	"github.com/Lugdu84/ebay-clone-nft/domain/keys"
	mmiddleware "github.com/Lugdu84/ebay-clone-nft/middleware"
	"github.com/Lugdu84/ebay-clone-nft/service/cache"
	redisCacheProvider "github.com/Lugdu84/ebay-clone-nft/service/cache/provider/redis"
	"github.com/Lugdu84/ebay-clone-nft/service/chain"
	"github.com/Lugdu84/ebay-clone-nft/service/chain/contract"
	"github.com/Lugdu84/ebay-clone-nft/service/ens"
	"github.com/Lugdu84/ebay-clone-nft/service/lock"
	"github.com/Lugdu84/ebay-clone-nft/service/notifier"
	"github.com/Lugdu84/ebay-clone-nft/service/pinata"
	"github.com/Lugdu84/ebay-clone-nft/service/query"
	"github.com/Lugdu84/ebay-clone-nft/service/redis"
	"github.com/Lugdu84/ebay-clone-nft/service/webresource"
	activity_delivery "github.com/Lugdu84/ebay-clone-nft/stores/activity/delivery/http"
	activity_repository "github.com/Lugdu84/ebay-clone-nft/stores/activity/repository"
	activity_usecase "github.com/Lugdu84/ebay-clone-nft/stores/activity/usecase"
	hc_delivery "github.com/Lugdu84/ebay-clone-nft/stores/healthcheck/delivery/http"
	hc_repo "github.com/Lugdu84/ebay-clone-nft/stores/healthcheck/repository"
	hc_usecase "github.com/Lugdu84/ebay-clone-nft/stores/healthcheck/usecase"
	listing_delivery "github.com/Lugdu84/ebay-clone-nft/stores/listing/delivery/http"
	listing_repository "github.com/Lugdu84/ebay-clone-nft/stores/listing/repository"
	listing_usecase "github.com/Lugdu84/ebay-clone-nft/stores/listing/usecase"
	mint_delivery "github.com/Lugdu84/ebay-clone-nft/stores/mint/delivery/http"
	mint_usecase "github.com/Lugdu84/ebay-clone-nft/stores/mint/usecase"
)

func init() {
	pflag.String("config", "infra/configs/config.yaml", "config file path")
	pflag.Parse()
	if err := viper.BindPFlags(pflag.CommandLine); err != nil {
		panic(err)
	}

	viper.SetConfigType("yaml")
	viper.SetConfigFile(viper.GetString("config"))
	err := viper.ReadInConfig()
	if err != nil {
		panic(err)
	}

	if viper.GetBool(`debug`) {
		log.Log().Info("Service RUN on DEBUG mode")
	}
}

func main() {
	// init echo
	e := echo.New()
	e.Use(middleware.Recover())
	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{}))
	e.Use(middleware.RequestID())
	middL := mmiddleware.InitMiddleware()
	e.Use(middL.ResponseLogger())
	e.Use(middL.AddContext())
	e.Use(middL.WalletSession(viper.GetString("session.secret")))
	e.Use(middleware.CORS())
	e.Validator = bValidator.NewCustomValidator(validator.New())

	context := ctx.Background()

	// init mongo client
	context.Info("init mongo")
	uri := viper.GetString("mongo.uri")
	authDBName := viper.GetString("mongo.authDBName")
	dbName := viper.GetString("mongo.dbName")
	enableSSL := viper.GetBool("mongo.enableSSL")
	mongoClient := mongoclient.MustConnectMongoClient(uri, authDBName, dbName, enableSSL, true, 2)
	q := query.New(mongoClient)

	// init redis service
	context.Info("init redis cache")
	redisCacheName := viper.GetString("redis_cache.name")
	redisCacheURI := viper.GetString("redis_cache.uri")
	redisCachePwd := viper.GetString("redis_cache.password")
	redisCachePoolMultiplier := viper.GetFloat64("redis_cache.poolMultiplier")
	redisCachePool := redisclient.MustConnectRedis(redisCacheURI, redisCachePwd, redisclient.RedisParam{
		PoolMultiplier: redisCachePoolMultiplier,
		Retry:          true,
	})
	redisCache := redis.New(redisCacheName, metrics.New(redisCacheName), &redis.Pools{
		Src: redisCachePool,
	})

	mmiddleware.SetupCache(redisCache)

	// init chain service
	context.Info("init chain client")
	chainId := domain.ChainId(viper.GetInt32("network.chainId"))
	chainService, err := chain.NewClient(context, &chain.ClientCfg{
		ChainId:     chainId,
		RpcUrl:      viper.GetString("network.rpcUrl"),
		OperatorKey: viper.GetString("network.operatorKey"),
	})
	if err != nil {
		log.Log().WithField("err", err).Panic("failed to init chain client")
	}

	ipfsShell := ipfsapi.NewShell(viper.GetString("ipfs.gateway"))
	webResource := webresource.New(ipfsShell, viper.GetDuration("ipfs.timeout"))

	marketplaceService := contract.NewMarketplace(&contract.MarketplaceCfg{
		Client:      chainService,
		Address:     domain.Address(viper.GetString("network.marketplace")).ToLower(),
		WebResource: webResource,
	})
	collectionService := contract.NewCollection(&contract.CollectionCfg{
		Client:      chainService,
		Address:     domain.Address(viper.GetString("network.collection")).ToLower(),
		WebResource: webResource,
	})

	pinataService := pinata.New(viper.GetString("pinata.apiKey"), viper.GetString("pinata.apiSecret"))

	// ens on ethereum
	ensService := ens.New(viper.GetString("ens.rpcUrl"), redisCache)

	notifierService := notifier.New(&notifier.Cfg{
		Redis:            redisCache,
		Channel:          keys.RedisKey(keys.PfxNotification, "events"),
		DiscordBotKey:    viper.GetString("discord.botKey"),
		DiscordChannelId: viper.GetString("discord.channelId"),
	})

	lockService := lock.New(redisCache, viper.GetDuration("lock.ttl"))

	draftCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("draft.ttl"),
		Pfx:   keys.PfxListingDraft,
		Cache: redisCacheProvider.NewRedis(redisCache),
	})
	minNextBidCache := cache.New(cache.ServiceConfig{
		Ttl:   viper.GetDuration("minNextBid.ttl"),
		Pfx:   keys.PfxMinimumNextBid,
		Cache: redisCacheProvider.NewRedis(redisCache),
	})

	// construct repository, usecase and delivery
	hcRepo := hc_repo.New(mongoClient, redisCache)
	hcUseCase := hc_usecase.New(hcRepo)

	activityRepo := activity_repository.NewActivityRepo(q)
	activityUseCase := activity_usecase.NewActivityUseCase(activityRepo)

	draftRepo := listing_repository.NewDraftRepo(draftCache)
	listingUseCase := listing_usecase.NewListingUseCase(&listing_usecase.ListingUseCaseCfg{
		ChainId:     chainId,
		Marketplace: marketplaceService,
		Collection:  collectionService,
		DraftRepo:   draftRepo,
		MinNextBid:  minNextBidCache,
		Ens:         ensService,
		Notifier:    notifierService,
		Activity:    activityUseCase,
		Lock:        lockService,
	})

	mintUseCase := mint_usecase.NewMintUseCase(&mint_usecase.MintUseCaseCfg{
		Collection: collectionService,
		Pinata:     pinataService,
		Notifier:   notifierService,
		Activity:   activityUseCase,
		Lock:       lockService,
	})

	hc_delivery.New(e, hcUseCase)
	listing_delivery.New(e, listingUseCase, chainId)
	mint_delivery.New(e, mintUseCase)
	activity_delivery.New(e, activityUseCase)

	go func() {
		if err := e.Start(viper.GetString("server.address")); err != nil && err != http.ErrServerClosed {
			log.Log().WithField("err", err).Error("shutting down the server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server with a timeout of 10 seconds.
	// Use a buffered channel to avoid missing signals as recommended for signal.Notify
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	sig := <-quit
	log.Log().WithField("signal", sig).Info("received signal")
	ctx, cancel := ctx.WithTimeout(context, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Log().WithField("err", err).Error("shutting down the server")
	} else {
		log.Log().Info("shutdown server successfully")
	}
}
