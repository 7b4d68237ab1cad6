package gateway

import (
	"Newsroom/internal/api/middleware"
	"Newsroom/internal/config"
	"Newsroom/internal/pkg/logger"
	log "log/slog"
	"net/http"
	"net/http/httputil"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

// NewRouter 按配置的前缀把请求转发到各下游服务
func NewRouter(cfg config.GatewayConfig) (*gin.Engine, error) {
	r := gin.New()
	_ = r.SetTrustedProxies([]string{"localhost"})

	r.Use(middleware.TraceMiddleware())
	r.Use(middleware.AuditMiddleware())
	r.Use(middleware.CORSMiddleware())
	logger.SetupGin(r)

	for _, route := range cfg.Routes {
		target, err := url.Parse(route.Target)
		if err != nil {
			return nil, errors.Wrapf(err, "网关路由目标无效: %s", route.Target)
		}

		proxy := httputil.NewSingleHostReverseProxy(target)
		proxy.ErrorHandler = func(w http.ResponseWriter, req *http.Request, err error) {
			log.ErrorContext(req.Context(), "gateway upstream error",
				"path", req.URL.Path, "target", target.String(), "err", err)
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.WriteHeader(http.StatusBadGateway)
			_, _ = w.Write([]byte(`{"code":502,"message":"下游服务不可用","data":null}`))
		}

		h := func(c *gin.Context) {
			proxy.ServeHTTP(c.Writer, c.Request)
		}
		r.Any(route.Prefix, h)
		r.Any(route.Prefix+"/*path", h)

		log.Info("gateway route registered", "prefix", route.Prefix, "target", route.Target)
	}

	return r, nil
}
