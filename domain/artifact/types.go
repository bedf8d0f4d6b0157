// Package artifact defines the immutable records each pipeline stage hands to
// the next. An artifact references durable output locations; it never carries
// data itself.
package artifact

// DataIngestionArtifact is the output of the ingestion stage: paths to the
// train/test split written to disk.
type DataIngestionArtifact struct {
	TrainFilePath string `json:"train_file_path"`
	TestFilePath  string `json:"test_file_path"`
}

// DataValidationArtifact is the output of the validation stage. All six paths
// are always populated regardless of outcome; ValidationStatus is the signal
// downstream consumers must check before proceeding.
type DataValidationArtifact struct {
	ValidationStatus     bool   `json:"validation_status"`
	ValidTrainFilePath   string `json:"valid_train_file_path"`
	ValidTestFilePath    string `json:"valid_test_file_path"`
	InvalidTrainFilePath string `json:"invalid_train_file_path"`
	InvalidTestFilePath  string `json:"invalid_test_file_path"`
	DriftReportFilePath  string `json:"drift_report_file_path"`
}

// DataTransformationArtifact is the output of the feature transformation stage.
type DataTransformationArtifact struct {
	TransformedObjectFilePath string `json:"transformed_object_file_path"`
	TransformedTrainFilePath  string `json:"transformed_train_file_path"`
	TransformedTestFilePath   string `json:"transformed_test_file_path"`
}

// ClassificationMetricArtifact bundles the evaluation metrics for one dataset.
type ClassificationMetricArtifact struct {
	F1Score        float64 `json:"f1_score"`
	PrecisionScore float64 `json:"precision_score"`
	RecallScore    float64 `json:"recall_score"`
}

// ModelTrainerArtifact is the output of the training stage.
type ModelTrainerArtifact struct {
	TrainedModelFilePath string                       `json:"trained_model_file_path"`
	TrainMetricArtifact  ClassificationMetricArtifact `json:"train_metric_artifact"`
	TestMetricArtifact   ClassificationMetricArtifact `json:"test_metric_artifact"`
}

// ModelEvaluationArtifact records whether a freshly trained model should
// replace the currently deployed one.
type ModelEvaluationArtifact struct {
	IsModelAccepted  bool                         `json:"is_model_accepted"`
	ImprovedAccuracy float64                      `json:"improved_accuracy"`
	BestModelPath    string                       `json:"best_model_path"`
	TrainedModelPath string                       `json:"trained_model_path"`
	TrainModelMetric ClassificationMetricArtifact `json:"train_model_metric"`
	BestModelMetric  ClassificationMetricArtifact `json:"best_model_metric"`
}

// ModelPusherArtifact is the output of the model pushing stage.
type ModelPusherArtifact struct {
	SavedModelPath string `json:"saved_model_path"`
	ModelFilePath  string `json:"model_file_path"`
}
