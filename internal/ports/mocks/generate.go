//go:generate mockgen -source=../donation_repository.go   -destination=./mock_donation_repository.go   -package=mocks
//go:generate mockgen -source=../donation_cache.go        -destination=./mock_donation_cache.go        -package=mocks
//go:generate mockgen -source=../payment_processor.go     -destination=./mock_payment_processor.go     -package=mocks
//go:generate mockgen -source=../request_validator.go     -destination=./mock_request_validator.go     -package=mocks
//go:generate mockgen -source=../logger.go                -destination=./mock_logger.go                -package=mocks
//go:generate mockgen -source=../message_consumer.go      -destination=./mock_message_consumer.go      -package=mocks
//go:generate mockgen -source=../donation_read_service.go -destination=./mock_donation_read_service.go -package=mocks

package mocks
