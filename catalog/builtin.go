package catalog

import "github.com/iayr1/algovista-sub001/widget"

// Ids of the built-in descriptors.
const (
	LinearRegressionID = "linear-regression"
	KMeansID           = "k-means"
)

func builtin() []Descriptor {
	return []Descriptor{linearRegression(), kMeans()}
}

func linearRegression() Descriptor {
	return Descriptor{
		ID:         LinearRegressionID,
		Name:       "Linear Regression",
		Category:   "Supervised Learning",
		Type:       "Regression",
		Difficulty: Beginner,
		Summary: "Linear regression models the relationship between an input variable and a " +
			"continuous target by fitting a straight line through the observed data. It is " +
			"usually the first model worth trying on a regression problem.",
		Definition: "Given n observations (xᵢ, yᵢ), linear regression finds the coefficients β₀ " +
			"(intercept) and β₁ (slope) of the line ŷ = β₀ + β₁x that minimize the sum of squared " +
			"differences between the observed values yᵢ and the predictions ŷᵢ. The minimizer has " +
			"a closed form, the ordinary least squares (OLS) solution.",
		Characteristics: []string{
			"Assumes a linear relationship between inputs and target",
			"Closed-form solution via ordinary least squares",
			"Coefficients are directly interpretable",
			"Sensitive to outliers, since errors are squared",
			"Fast to train and to predict",
		},
		UseCases: []string{
			"Forecasting sales from advertising spend",
			"Estimating house prices from floor area",
			"Trend analysis of time-ordered measurements",
			"Baseline model before trying non-linear methods",
		},
		Formulas: []Formula{
			{Label: "Model", Expr: "ŷ = β₀ + β₁x"},
			{Label: "Cost (MSE)", Expr: "J(β₀, β₁) = (1/n) Σᵢ (yᵢ − ŷᵢ)²"},
			{Label: "Slope (OLS)", Expr: "β₁ = Σᵢ (xᵢ − x̄)(yᵢ − ȳ) / Σᵢ (xᵢ − x̄)²"},
			{Label: "Intercept (OLS)", Expr: "β₀ = ȳ − β₁x̄"},
		},
		Code: CodeSample{
			Language: "python",
			Source: `import numpy as np
from sklearn.linear_model import LinearRegression

X = np.array([[1], [2], [3], [4], [5], [6]])
y = np.array([2.8, 5.3, 6.9, 9.2, 10.8, 13.1])

model = LinearRegression()
model.fit(X, y)

print("slope:", model.coef_[0])
print("intercept:", model.intercept_)
print("prediction at x=7:", model.predict([[7]])[0])
`,
		},
		Widget: widget.KindLineOverlay,
	}
}

func kMeans() Descriptor {
	return Descriptor{
		ID:         KMeansID,
		Name:       "K-Means Clustering",
		Category:   "Unsupervised Learning",
		Type:       "Clustering",
		Difficulty: Intermediate,
		Summary: "K-means partitions unlabeled data into k groups so that every point belongs to " +
			"the cluster with the nearest mean. It is the most widely used clustering algorithm.",
		Definition: "Given n points and a number of clusters k, k-means chooses k centroids μ₁..μₖ " +
			"and an assignment of points to centroids that minimizes the within-cluster sum of " +
			"squared distances. Lloyd's algorithm alternates two steps until assignments stop " +
			"changing: assign every point to its nearest centroid, then move every centroid to " +
			"the mean of its assigned points.",
		Characteristics: []string{
			"Number of clusters k is chosen up front",
			"Converges to a local optimum that depends on initialization",
			"Assumes roughly spherical clusters of similar size",
			"Each iteration costs O(n·k·d)",
			"Sensitive to feature scaling and outliers",
		},
		UseCases: []string{
			"Customer segmentation",
			"Image color quantization",
			"Document grouping by topic",
			"Codebook learning for vector quantization",
		},
		Formulas: []Formula{
			{Label: "Objective", Expr: "J = Σⱼ Σ_{x ∈ Cⱼ} ‖x − μⱼ‖²"},
			{Label: "Assignment step", Expr: "cᵢ = argminⱼ ‖xᵢ − μⱼ‖²"},
			{Label: "Update step", Expr: "μⱼ = (1/|Cⱼ|) Σ_{x ∈ Cⱼ} x"},
		},
		Code: CodeSample{
			Language: "python",
			Source: `import numpy as np
from sklearn.cluster import KMeans

X = np.array([[1.0, 1.2], [1.5, 0.8], [5.0, 5.3],
              [5.6, 4.9], [8.2, 1.4], [8.8, 1.0]])

km = KMeans(n_clusters=3, n_init=10, random_state=0)
labels = km.fit_predict(X)

print("labels:", labels)
print("centroids:", km.cluster_centers_)
`,
		},
		Widget: widget.KindClusters,
	}
}
