package publisher

// Walrus publisher API
const (
	WalrusBlobsPath    = "/v1/blobs"
	WalrusContentType  = "text/plain"
	WalrusEncodingUTF8 = "utf-8"
	ParamEpochs        = "epochs"
	ParamDeletable     = "deletable"
	ParamEncodingType  = "encodingType"
	DefaultEpochs      = 1
	maxErrorBodyBytes  = 4096
)

// S3 objects
const (
	DefaultS3ContentType  = "text/plain; charset=utf-8"
	DefaultS3ObjectSuffix = ".json"
)

// Error Messages
const (
	ErrMsgBuildRequest     = "failed to build publish request"
	ErrMsgSendRequest      = "publish request failed"
	ErrMsgUnexpectedStatus = "publisher returned unexpected status"
	ErrMsgReadResponse     = "failed to read publisher response"
	ErrMsgUnknownReceipt   = "publisher response has no recognised receipt"
	ErrMsgLoadAWSConfig    = "failed to load AWS configuration"
	ErrMsgHeadObject       = "failed to check existing object"
	ErrMsgUploadObject     = "failed to upload object"
)

// Log Messages
const (
	LogMsgPublishing     = "Publishing blob"
	LogMsgPublished      = "Blob published"
	LogMsgPublishFailed  = "Blob publish failed"
	LogMsgObjectUploaded = "Object uploaded"
)
