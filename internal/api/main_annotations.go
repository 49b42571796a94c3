// @title           worklog API
// @version         1.0
// @description     Personal note/log records. Authenticate with the account token.
// @BasePath        /api/1
// @securityDefinitions.apikey BearerToken
// @in              header
// @name            Authorization
// @description     Type "Bearer" followed by a space and md5(account.password).
package api
