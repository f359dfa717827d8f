package repository

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"internship-web/backend/internal/model"
	pkgerrors "internship-web/backend/pkg/errors"
)

// 集合名称
const (
	collUsers        = "users"
	collInternships  = "internships"
	collApplications = "applications"
	collReports      = "reports"
	collEvaluations  = "evaluations"
)

// noInternalID 读取时剔除 Mongo 内部 _id
var noInternalID = bson.M{"_id": 0}

// NewMongoRepository 创建基于 MongoDB 的 Repository 聚合
func NewMongoRepository(db *mongo.Database) *Repository {
	return &Repository{
		User:        &mongoUserRepo{c: newMongoCollection[model.User](db, collUsers)},
		Internship:  &mongoInternshipRepo{c: newMongoCollection[model.InternshipProgram](db, collInternships)},
		Application: &mongoApplicationRepo{c: newMongoCollection[model.Application](db, collApplications)},
		Report:      &mongoReportRepo{c: newMongoCollection[model.Report](db, collReports)},
		Evaluation:  &mongoEvaluationRepo{c: newMongoCollection[model.Evaluation](db, collEvaluations)},
	}
}

// EnsureIndexes 创建业务 ID 与唯一约束索引（幂等）
// 用户名唯一、(student_id, internship_id) 唯一是"重复申请"检查之外的兜底
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	unique := func(keys ...string) mongo.IndexModel {
		d := bson.D{}
		for _, k := range keys {
			d = append(d, bson.E{Key: k, Value: 1})
		}
		return mongo.IndexModel{Keys: d, Options: options.Index().SetUnique(true)}
	}
	plain := func(key string) mongo.IndexModel {
		return mongo.IndexModel{Keys: bson.D{{Key: key, Value: 1}}}
	}

	specs := map[string][]mongo.IndexModel{
		collUsers:        {unique("id"), unique("username"), plain("role")},
		collInternships:  {unique("id")},
		collApplications: {unique("id"), unique("student_id", "internship_id"), plain("status")},
		collReports:      {unique("id"), plain("student_id")},
		collEvaluations:  {unique("id"), plain("student_id")},
	}
	for coll, models := range specs {
		if _, err := db.Collection(coll).Indexes().CreateMany(ctx, models); err != nil {
			return err
		}
	}
	return nil
}

// ── 通用集合操作 ──

// mongoCollection 对单个集合的泛型封装：insert / findOne / findMany / updateOne / deleteOne / count
type mongoCollection[T any] struct {
	coll *mongo.Collection
}

func newMongoCollection[T any](db *mongo.Database, name string) mongoCollection[T] {
	return mongoCollection[T]{coll: db.Collection(name)}
}

func (c mongoCollection[T]) insert(ctx context.Context, doc *T) error {
	_, err := c.coll.InsertOne(ctx, doc)
	return translateMongoError(err)
}

func (c mongoCollection[T]) findOne(ctx context.Context, filter bson.M) (*T, error) {
	var doc T
	err := c.coll.FindOne(ctx, filter, options.FindOne().SetProjection(noInternalID)).Decode(&doc)
	if err != nil {
		return nil, translateMongoError(err)
	}
	return &doc, nil
}

func (c mongoCollection[T]) findMany(ctx context.Context, filter bson.M) ([]T, error) {
	cur, err := c.coll.Find(ctx, filter, options.Find().SetProjection(noInternalID))
	if err != nil {
		return nil, translateMongoError(err)
	}
	defer cur.Close(ctx)

	docs := make([]T, 0)
	if err := cur.All(ctx, &docs); err != nil {
		return nil, translateMongoError(err)
	}
	return docs, nil
}

// updateOne 未匹配到文档时不返回错误
func (c mongoCollection[T]) updateOne(ctx context.Context, filter bson.M, set Fields) error {
	if len(set) == 0 {
		return nil
	}
	_, err := c.coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M(set)})
	return translateMongoError(err)
}

// deleteOne 未匹配到文档时不返回错误
func (c mongoCollection[T]) deleteOne(ctx context.Context, filter bson.M) error {
	_, err := c.coll.DeleteOne(ctx, filter)
	return translateMongoError(err)
}

func (c mongoCollection[T]) count(ctx context.Context, filter bson.M) (int64, error) {
	n, err := c.coll.CountDocuments(ctx, filter)
	return n, translateMongoError(err)
}

// translateMongoError 将驱动错误翻译为存储层通用错误
func translateMongoError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return pkgerrors.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return pkgerrors.ErrDuplicate
	default:
		return err
	}
}

func recordFilterToBSON(f RecordFilter) bson.M {
	m := bson.M{}
	if f.StudentID != "" {
		m["student_id"] = f.StudentID
	}
	if f.Status != "" {
		m["status"] = f.Status
	}
	return m
}

func byID(id string) bson.M { return bson.M{"id": id} }

// ── Users ──

type mongoUserRepo struct {
	c mongoCollection[model.User]
}

func (r *mongoUserRepo) Create(ctx context.Context, user *model.User) error {
	return r.c.insert(ctx, user)
}

func (r *mongoUserRepo) GetByID(ctx context.Context, id string) (*model.User, error) {
	return r.c.findOne(ctx, byID(id))
}

func (r *mongoUserRepo) GetByUsername(ctx context.Context, username string) (*model.User, error) {
	return r.c.findOne(ctx, bson.M{"username": username})
}

func (r *mongoUserRepo) ListByRole(ctx context.Context, role string) ([]model.User, error) {
	return r.c.findMany(ctx, bson.M{"role": role})
}

func (r *mongoUserRepo) Update(ctx context.Context, id, role string, fields Fields) error {
	return r.c.updateOne(ctx, userFilter(id, role), fields)
}

func (r *mongoUserRepo) Delete(ctx context.Context, id, role string) error {
	return r.c.deleteOne(ctx, userFilter(id, role))
}

func (r *mongoUserRepo) Count(ctx context.Context, role string) (int64, error) {
	filter := bson.M{}
	if role != "" {
		filter["role"] = role
	}
	return r.c.count(ctx, filter)
}

func userFilter(id, role string) bson.M {
	f := byID(id)
	if role != "" {
		f["role"] = role
	}
	return f
}

// ── Internships ──

type mongoInternshipRepo struct {
	c mongoCollection[model.InternshipProgram]
}

func (r *mongoInternshipRepo) Create(ctx context.Context, program *model.InternshipProgram) error {
	return r.c.insert(ctx, program)
}

func (r *mongoInternshipRepo) GetByID(ctx context.Context, id string) (*model.InternshipProgram, error) {
	return r.c.findOne(ctx, byID(id))
}

func (r *mongoInternshipRepo) List(ctx context.Context) ([]model.InternshipProgram, error) {
	return r.c.findMany(ctx, bson.M{})
}

func (r *mongoInternshipRepo) Update(ctx context.Context, id string, fields Fields) error {
	return r.c.updateOne(ctx, byID(id), fields)
}

func (r *mongoInternshipRepo) Delete(ctx context.Context, id string) error {
	return r.c.deleteOne(ctx, byID(id))
}

func (r *mongoInternshipRepo) Count(ctx context.Context) (int64, error) {
	return r.c.count(ctx, bson.M{})
}

// ── Applications ──

type mongoApplicationRepo struct {
	c mongoCollection[model.Application]
}

func (r *mongoApplicationRepo) Create(ctx context.Context, app *model.Application) error {
	return r.c.insert(ctx, app)
}

func (r *mongoApplicationRepo) GetByID(ctx context.Context, id string) (*model.Application, error) {
	return r.c.findOne(ctx, byID(id))
}

func (r *mongoApplicationRepo) FindByPair(ctx context.Context, studentID, internshipID string) (*model.Application, error) {
	return r.c.findOne(ctx, bson.M{"student_id": studentID, "internship_id": internshipID})
}

func (r *mongoApplicationRepo) List(ctx context.Context, filter RecordFilter) ([]model.Application, error) {
	return r.c.findMany(ctx, recordFilterToBSON(filter))
}

func (r *mongoApplicationRepo) UpdateStatus(ctx context.Context, id string, status model.ApplicationStatus) error {
	return r.c.updateOne(ctx, byID(id), Fields{"status": string(status)})
}

func (r *mongoApplicationRepo) Count(ctx context.Context, filter RecordFilter) (int64, error) {
	return r.c.count(ctx, recordFilterToBSON(filter))
}

// ── Reports ──

type mongoReportRepo struct {
	c mongoCollection[model.Report]
}

func (r *mongoReportRepo) Create(ctx context.Context, report *model.Report) error {
	return r.c.insert(ctx, report)
}

func (r *mongoReportRepo) GetByID(ctx context.Context, id string) (*model.Report, error) {
	return r.c.findOne(ctx, byID(id))
}

func (r *mongoReportRepo) List(ctx context.Context, filter RecordFilter) ([]model.Report, error) {
	return r.c.findMany(ctx, recordFilterToBSON(filter))
}

func (r *mongoReportRepo) UpdateStatus(ctx context.Context, id string, status model.ReportStatus) error {
	return r.c.updateOne(ctx, byID(id), Fields{"status": string(status)})
}

func (r *mongoReportRepo) Count(ctx context.Context, filter RecordFilter) (int64, error) {
	return r.c.count(ctx, recordFilterToBSON(filter))
}

// ── Evaluations ──

type mongoEvaluationRepo struct {
	c mongoCollection[model.Evaluation]
}

func (r *mongoEvaluationRepo) Create(ctx context.Context, eval *model.Evaluation) error {
	return r.c.insert(ctx, eval)
}

func (r *mongoEvaluationRepo) List(ctx context.Context, filter RecordFilter) ([]model.Evaluation, error) {
	return r.c.findMany(ctx, recordFilterToBSON(filter))
}

func (r *mongoEvaluationRepo) Count(ctx context.Context, filter RecordFilter) (int64, error) {
	return r.c.count(ctx, recordFilterToBSON(filter))
}
