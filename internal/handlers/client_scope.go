package handlers

import (
	portssvc "github.com/SscSPs/storefront_pricing/internal/core/ports/services"
	"github.com/SscSPs/storefront_pricing/internal/middleware"
	"github.com/gin-gonic/gin"
)

// pricingForClient narrows svc to the caller's preference namespace when one was resolved.
func pricingForClient(c *gin.Context, svc portssvc.PricingSvcFacade) portssvc.PricingSvcFacade {
	namespace, ok := middleware.GetClientNamespaceFromContext(c)
	if !ok {
		return svc
	}
	return svc.ForClient(namespace)
}
