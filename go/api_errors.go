package boutiqueserver

import (
	"github.com/gin-gonic/gin"
)

const (
	storeNotFoundMessage = "The store with the re-signed identifier does not exist."
	missingNameMessage   = "Parameter nom is missing"
	storeCreatedMessage  = "Store created with success."
	storeUpdatedMessage  = "Store updated with success."
	storeDeletedMessage  = "Store successfully deleted"
	updateFailedMessage  = "Update store failed with id=%d. Error : %s"
	deleteFailedMessage  = "Delete store failed. Error message : %s"
	lookupFailedMessage  = "Error : %s"
)

// respondEnvelope writes the {status, message} envelope with a matching HTTP status.
func respondEnvelope(c *gin.Context, status int, message string) {
	c.JSON(status, ApiResponse{Status: status, Message: message})
}

// abortWithEnvelope stops the handler chain after writing the envelope.
func abortWithEnvelope(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ApiResponse{Status: status, Message: message})
}
